package urlscan

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/scamshield/scamshield/internal/domain"
)

// EngineVerdict is one scan engine's opinion of a URL.
type EngineVerdict struct {
	Category string
	Result   string
}

// ScanReport is the normalized output of the URL-reputation provider:
// aggregate verdict counts, the per-engine verdict list, and optional
// certificate and analysis metadata.
type ScanReport struct {
	Harmless     int
	Malicious    int
	Suspicious   int
	Undetected   int
	Engines      []EngineVerdict
	SSL          *domain.SSLInfo
	LastAnalysis time.Time
}

// External-path issue strings.
const (
	issueEnginePhishing  = "Flagged as phishing by scan engines"
	issueEngineMalware   = "Flagged as malware by scan engines"
	issueEngineScam      = "Flagged as a scam site by scan engines"
	issueEngineRedirects = "Suspicious redirect behavior reported by scan engines"
	issueBlacklisted     = "Listed on threat blacklists"
)

// FromReport normalizes a reputation-scan report into the unified
// assessment shape, applying the same risk-level rule and threat score
// cap as the local scorer. Pure given its inputs. An empty report (no
// engines counted) is an error; the caller falls back to the local
// scorer with no partial external data retained.
func FromReport(formattedURL string, rep ScanReport) (domain.RiskAssessment, error) {
	total := rep.Harmless + rep.Malicious + rep.Suspicious + rep.Undetected
	if total == 0 {
		return domain.RiskAssessment{}, fmt.Errorf("scan report contains no engine verdicts")
	}

	maliciousPct := float64(rep.Malicious) / float64(total) * 100
	suspiciousPct := float64(rep.Suspicious) / float64(total) * 100
	securityScore := domain.ClampScore(int(math.Round(100 - (maliciousPct + suspiciousPct/2))))

	isPhishing := anyEngine(rep.Engines, "phishing", "phish")
	isMalware := anyEngine(rep.Engines, "malware", "malware")
	isScam := isPhishing || anyEngine(rep.Engines, "scam", "scam")
	hasRedirects := false
	for _, e := range rep.Engines {
		result := strings.ToLower(e.Result)
		if strings.Contains(result, "redirect") || strings.Contains(result, "suspicious") {
			hasRedirects = true
			break
		}
	}

	hasTLS := strings.HasPrefix(formattedURL, "https://")
	ssl := domain.SSLInfo{Valid: hasTLS, Issuer: "Unknown", ExpiryDate: "Unknown"}
	if rep.SSL != nil {
		ssl = *rep.SSL
	}

	level := domain.RiskLow
	switch {
	case isPhishing || isMalware || isScam || rep.Malicious > 0:
		level = domain.RiskHigh
	case hasRedirects || rep.Suspicious > 0 || !ssl.Valid:
		level = domain.RiskMedium
	case securityScore < mediumScoreFloor:
		level = domain.RiskMedium
	}
	if isPhishing || isMalware || isScam {
		if securityScore > threatScoreCap {
			securityScore = threatScoreCap
		}
	}

	issues := []string{}
	if isPhishing {
		issues = append(issues, issueEnginePhishing)
	}
	if isMalware {
		issues = append(issues, issueEngineMalware)
	}
	if isScam {
		issues = append(issues, issueEngineScam)
	}
	if hasRedirects {
		issues = append(issues, issueEngineRedirects)
	}
	if rep.Malicious > 0 {
		issues = append(issues, issueBlacklisted)
	}

	host, ok := parseHost(formattedURL)
	if !ok {
		host = "Unknown"
	}

	registration := "Unknown"
	if !rep.LastAnalysis.IsZero() {
		registration = rep.LastAnalysis.Format("2006-01-02")
	}

	a := domain.NewAssessment(domain.KindURL, formattedURL, 100-securityScore, domain.SourceExternalService)
	a.RiskLevel = level
	a.Issues = issues
	a.URL = &domain.URLDetails{
		IsPhishing:             isPhishing,
		IsMalware:              isMalware,
		IsScam:                 isScam,
		HasSuspiciousRedirects: hasRedirects,
		SecurityScore:          securityScore,
		Domain:                 host,
		RegistrationDate:       registration,
		SSL:                    ssl,
		Blacklists:             domain.BlacklistInfo{Listed: rep.Malicious > 0, Count: rep.Malicious},
		ScanDetails: domain.ScanStats{
			TotalEngines: total,
			Malicious:    rep.Malicious,
			Suspicious:   rep.Suspicious,
			Harmless:     rep.Harmless,
			Undetected:   rep.Undetected,
		},
	}
	return a, nil
}

// anyEngine reports whether any engine verdict carries the given
// category or mentions the substring in its result.
func anyEngine(engines []EngineVerdict, category, substring string) bool {
	for _, e := range engines {
		if strings.EqualFold(e.Category, category) {
			return true
		}
		if strings.Contains(strings.ToLower(e.Result), substring) {
			return true
		}
	}
	return false
}
