// Package urlscan implements the URL/link safety scanner. The local
// path counts independent suspicion signals (bait wording, abusive
// TLDs, deep subdomains, oversized domains, brand typosquats, missing
// TLS) and derives threat flags and a security score from the counter.
// The external path normalizes a reputation-scan report into the same
// shape.
package urlscan

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/scamshield/scamshield/internal/domain/patterns"
)

// Scoring constants carried over from the original rule set.
const (
	suspicionWeight   = 15 // securityScore = 100 - weight*counter
	threatScoreCap    = 25 // securityScore ceiling once any threat flag is set
	invalidURLScore   = 10 // terminal securityScore for unparsable input
	mediumScoreFloor  = 70 // below this, risk is at least Medium
	phishingThreshold = 3
	malwareThreshold  = 4
	scamThreshold     = 2
	redirectThreshold = 1
)

// Issue strings, in rule evaluation order.
const (
	issueInvalid    = "URL could not be parsed"
	issueBait       = "Matches suspicious keyword or pattern"
	issueUnusualTLD = "Uses an unusual or high-abuse top-level domain"
	issueSubdomains = "Contains more than two subdomains"
	issueLongDomain = "Unusually long domain name"
	issueTyposquat  = "Domain closely resembles a well-known brand"
	issueNoTLS      = "Connection is not encrypted (no HTTPS)"
)

// hostShape is the conservative check layered over net/url: Go's parser
// accepts registered-name characters that no real hostname uses.
var hostShape = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9.-]*[a-zA-Z0-9])?$`)

// NormalizeURL trims the input and inserts a https:// scheme when none
// is present.
func NormalizeURL(raw string) string {
	formatted := strings.TrimSpace(raw)
	if !strings.HasPrefix(formatted, "http://") && !strings.HasPrefix(formatted, "https://") {
		formatted = "https://" + formatted
	}
	return formatted
}

// Assess runs the local heuristic scan. An unparsable URL is a terminal
// maximal-risk result; no further rules are evaluated for it.
func Assess(raw string) domain.RiskAssessment {
	formatted := NormalizeURL(raw)

	host, ok := parseHost(formatted)
	if !ok {
		return invalidResult(formatted)
	}

	hasTLS := strings.HasPrefix(formatted, "https://")

	counter := 0
	issues := []string{}
	if matchesBait(formatted) {
		counter++
		issues = append(issues, issueBait)
	}
	if patterns.UnusualTLD.MatchString(host) {
		counter++
		issues = append(issues, issueUnusualTLD)
	}
	if strings.Count(host, ".") > 2 {
		counter++
		issues = append(issues, issueSubdomains)
	}
	if len(host) > 30 {
		counter++
		issues = append(issues, issueLongDomain)
	}
	if looksTyposquatted(host) {
		counter++
		issues = append(issues, issueTyposquat)
	}
	if !hasTLS {
		counter++
		issues = append(issues, issueNoTLS)
	}

	securityScore := domain.ClampScore(100 - suspicionWeight*counter)

	isPhishing := counter >= phishingThreshold
	isMalware := counter >= malwareThreshold
	isScam := counter >= scamThreshold
	hasRedirects := counter >= redirectThreshold

	level := domain.RiskLow
	switch {
	case isPhishing || isMalware || isScam:
		level = domain.RiskHigh
		if securityScore > threatScoreCap {
			securityScore = threatScoreCap
		}
	case hasRedirects || !hasTLS:
		level = domain.RiskMedium
	case securityScore < mediumScoreFloor:
		level = domain.RiskMedium
	}

	listed := counter >= phishingThreshold
	blacklistCount := 0
	malicious := 0
	if listed {
		blacklistCount = 1
		malicious = 1
	}
	harmless := 0
	if counter == 0 {
		harmless = 1
	}

	sslIssuer, sslExpiry := "None", "N/A"
	if hasTLS {
		sslIssuer, sslExpiry = "Unknown", "Unknown"
	}

	a := domain.NewAssessment(domain.KindURL, formatted, 100-securityScore, domain.SourceLocalHeuristic)
	a.RiskLevel = level
	a.Issues = issues
	a.URL = &domain.URLDetails{
		IsPhishing:             isPhishing,
		IsMalware:              isMalware,
		IsScam:                 isScam,
		HasSuspiciousRedirects: hasRedirects,
		SecurityScore:          securityScore,
		Domain:                 host,
		RegistrationDate:       "Unknown (Local Analysis)",
		SSL:                    domain.SSLInfo{Valid: hasTLS, Issuer: sslIssuer, ExpiryDate: sslExpiry},
		Blacklists:             domain.BlacklistInfo{Listed: listed, Count: blacklistCount},
		ScanDetails: domain.ScanStats{
			TotalEngines: 1,
			Malicious:    malicious,
			Suspicious:   counter,
			Harmless:     harmless,
			Undetected:   0,
		},
	}
	return a
}

func parseHost(formatted string) (string, bool) {
	u, err := url.Parse(formatted)
	if err != nil {
		return "", false
	}
	host := u.Hostname()
	if host == "" || !hostShape.MatchString(host) {
		return "", false
	}
	return strings.ToLower(host), true
}

func matchesBait(formatted string) bool {
	for _, p := range patterns.BaitPatterns {
		if p.MatchString(formatted) {
			return true
		}
	}
	return false
}

// looksTyposquatted reports whether host resembles one of the target
// brands without being the brand's own domain.
func looksTyposquatted(host string) bool {
	for i, p := range patterns.TyposquatPatterns {
		if p.MatchString(host) && host != patterns.TyposquatTargets[i]+".com" {
			return true
		}
	}
	return false
}

// invalidResult is the fixed terminal shape for unparsable URLs.
func invalidResult(formatted string) domain.RiskAssessment {
	a := domain.NewAssessment(domain.KindURL, formatted, 100-invalidURLScore, domain.SourceLocalHeuristic)
	a.RiskLevel = domain.RiskHigh
	a.Issues = []string{issueInvalid}
	a.URL = &domain.URLDetails{
		IsPhishing:             true,
		IsMalware:              false,
		IsScam:                 true,
		HasSuspiciousRedirects: true,
		SecurityScore:          invalidURLScore,
		Domain:                 "Invalid URL",
		RegistrationDate:       "Unknown",
		SSL:                    domain.SSLInfo{Valid: false, Issuer: "None", ExpiryDate: "N/A"},
		Blacklists:             domain.BlacklistInfo{Listed: true, Count: 1},
		ScanDetails: domain.ScanStats{
			TotalEngines: 1,
			Malicious:    1,
			Suspicious:   0,
			Harmless:     0,
			Undetected:   0,
		},
	}
	return a
}
