package providers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/scamshield/scamshield/internal/domain/urlscan"
)

const virusTotalBaseURL = "https://www.virustotal.com"

// VirusTotalClient implements ports.URLScanner against the VirusTotal
// v3 API. A scan is three calls: submit the URL, poll the analysis
// until it completes, then fetch the aggregated URL report.
type VirusTotalClient struct {
	apiKey string
	cfg    clientConfig
}

// NewVirusTotalClient creates a VirusTotal client with the given API key.
func NewVirusTotalClient(apiKey string, opts ...Option) *VirusTotalClient {
	return &VirusTotalClient{apiKey: apiKey, cfg: newClientConfig(virusTotalBaseURL, opts...)}
}

type vtSubmitResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type vtAnalysisResponse struct {
	Data struct {
		Attributes struct {
			Status string `json:"status"`
		} `json:"attributes"`
	} `json:"data"`
}

type vtURLResponse struct {
	Data struct {
		Attributes struct {
			LastAnalysisStats struct {
				Harmless   int `json:"harmless"`
				Malicious  int `json:"malicious"`
				Suspicious int `json:"suspicious"`
				Undetected int `json:"undetected"`
			} `json:"last_analysis_stats"`
			LastAnalysisResults map[string]struct {
				Category string `json:"category"`
				Result   string `json:"result"`
			} `json:"last_analysis_results"`
			LastAnalysisDate int64 `json:"last_analysis_date"`
			LastHTTPSCert    *struct {
				Issuer struct {
					O string `json:"O"`
				} `json:"issuer"`
				Validity struct {
					NotAfter string `json:"not_after"`
				} `json:"validity"`
			} `json:"last_https_certificate"`
		} `json:"attributes"`
	} `json:"data"`
}

// Scan submits formattedURL and returns the engine report. Polling is
// bounded: the analysis gets a fixed number of status checks with
// doubling waits, and a scan still pending after the last check is an
// error rather than an indefinite block.
func (c *VirusTotalClient) Scan(ctx context.Context, formattedURL string) (urlscan.ScanReport, error) {
	analysisID, err := c.submit(ctx, formattedURL)
	if err != nil {
		return urlscan.ScanReport{}, err
	}
	if err := c.awaitAnalysis(ctx, analysisID); err != nil {
		return urlscan.ScanReport{}, err
	}
	return c.fetchReport(ctx, formattedURL)
}

func (c *VirusTotalClient) submit(ctx context.Context, formattedURL string) (string, error) {
	form := url.Values{}
	form.Set("url", formattedURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.baseURL+"/api/v3/urls", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("virustotal: build submit request: %w", err)
	}
	req.Header.Set("x-apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body vtSubmitResponse
	if err := c.do(req, &body); err != nil {
		return "", fmt.Errorf("virustotal: submit: %w", err)
	}
	if body.Data.ID == "" {
		return "", fmt.Errorf("virustotal: submit returned no analysis id")
	}
	return body.Data.ID, nil
}

// awaitAnalysis polls the analysis endpoint until the status reaches
// "completed", waiting pollInitial before the first check and doubling
// up to pollCap between checks.
func (c *VirusTotalClient) awaitAnalysis(ctx context.Context, analysisID string) error {
	wait := c.cfg.pollInitial
	for attempt := 0; attempt < c.cfg.pollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.baseURL+"/api/v3/analyses/"+analysisID, nil)
		if err != nil {
			return fmt.Errorf("virustotal: build analysis request: %w", err)
		}
		req.Header.Set("x-apikey", c.apiKey)

		var body vtAnalysisResponse
		if err := c.do(req, &body); err != nil {
			return fmt.Errorf("virustotal: analysis status: %w", err)
		}
		if body.Data.Attributes.Status == "completed" {
			return nil
		}

		wait *= 2
		if wait > c.cfg.pollCap {
			wait = c.cfg.pollCap
		}
	}
	return fmt.Errorf("virustotal: analysis not completed after %d checks", c.cfg.pollAttempts)
}

func (c *VirusTotalClient) fetchReport(ctx context.Context, formattedURL string) (urlscan.ScanReport, error) {
	urlID := base64.RawURLEncoding.EncodeToString([]byte(formattedURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.baseURL+"/api/v3/urls/"+urlID, nil)
	if err != nil {
		return urlscan.ScanReport{}, fmt.Errorf("virustotal: build report request: %w", err)
	}
	req.Header.Set("x-apikey", c.apiKey)

	var body vtURLResponse
	if err := c.do(req, &body); err != nil {
		return urlscan.ScanReport{}, fmt.Errorf("virustotal: report: %w", err)
	}

	attrs := body.Data.Attributes
	rep := urlscan.ScanReport{
		Harmless:   attrs.LastAnalysisStats.Harmless,
		Malicious:  attrs.LastAnalysisStats.Malicious,
		Suspicious: attrs.LastAnalysisStats.Suspicious,
		Undetected: attrs.LastAnalysisStats.Undetected,
	}
	for _, verdict := range attrs.LastAnalysisResults {
		rep.Engines = append(rep.Engines, urlscan.EngineVerdict{Category: verdict.Category, Result: verdict.Result})
	}
	if attrs.LastAnalysisDate > 0 {
		rep.LastAnalysis = time.Unix(attrs.LastAnalysisDate, 0).UTC()
	}
	if cert := attrs.LastHTTPSCert; cert != nil {
		rep.SSL = &domain.SSLInfo{
			Valid:      true,
			Issuer:     orValue(cert.Issuer.O, "Unknown"),
			ExpiryDate: orValue(cert.Validity.NotAfter, "Unknown"),
		}
	}
	return rep, nil
}

func (c *VirusTotalClient) do(req *http.Request, out any) error {
	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func orValue(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
