package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/scamshield/scamshield/internal/domain/phone"
)

const numverifyBaseURL = "https://apilayer.net"

// NumverifyClient implements ports.PhoneValidator against the Numverify
// number validation API.
type NumverifyClient struct {
	apiKey string
	cfg    clientConfig
}

// NewNumverifyClient creates a Numverify client with the given API key.
func NewNumverifyClient(apiKey string, opts ...Option) *NumverifyClient {
	return &NumverifyClient{apiKey: apiKey, cfg: newClientConfig(numverifyBaseURL, opts...)}
}

// numverifyResponse covers both reply shapes: lookups carry the number
// fields, API-level failures carry success=false plus an error block.
type numverifyResponse struct {
	Success *bool `json:"success,omitempty"`
	Error   struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error"`

	Valid               bool   `json:"valid"`
	Number              string `json:"number"`
	LocalFormat         string `json:"local_format"`
	InternationalFormat string `json:"international_format"`
	CountryPrefix       string `json:"country_prefix"`
	CountryCode         string `json:"country_code"`
	CountryName         string `json:"country_name"`
	Location            string `json:"location"`
	Carrier             string `json:"carrier"`
	LineType            string `json:"line_type"`
}

// Lookup resolves number metadata. An invalid number is data, not an
// error: the scorer folds the valid flag into its assessment. Only
// transport and API-level failures return errors.
func (c *NumverifyClient) Lookup(ctx context.Context, number string) (phone.LookupData, error) {
	q := url.Values{}
	q.Set("access_key", c.apiKey)
	q.Set("number", phone.Canonical(number))
	q.Set("format", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.baseURL+"/api/validate?"+q.Encode(), nil)
	if err != nil {
		return phone.LookupData{}, fmt.Errorf("numverify: build request: %w", err)
	}

	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return phone.LookupData{}, fmt.Errorf("numverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return phone.LookupData{}, fmt.Errorf("numverify: unexpected status %d", resp.StatusCode)
	}

	var body numverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return phone.LookupData{}, fmt.Errorf("numverify: decode response: %w", err)
	}
	if body.Success != nil && !*body.Success {
		return phone.LookupData{}, fmt.Errorf("numverify: api error %d: %s", body.Error.Code, body.Error.Info)
	}

	return phone.LookupData{
		Valid:               body.Valid,
		Number:              body.Number,
		LocalFormat:         body.LocalFormat,
		InternationalFormat: body.InternationalFormat,
		CountryName:         body.CountryName,
		CountryCode:         body.CountryCode,
		CountryPrefix:       body.CountryPrefix,
		LineType:            body.LineType,
		Carrier:             body.Carrier,
		Location:            body.Location,
	}, nil
}
