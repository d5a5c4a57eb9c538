// Package message implements the text-message scam analyzer: six
// boolean keyword detectors combined into an additive risk score, an
// ordered scam-type classification, and a highlight transform for
// rendering. The external path normalizes an AI text-analysis reply
// into the same assessment shape.
package message

import (
	"fmt"
	"strings"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/scamshield/scamshield/internal/domain/patterns"
)

// Indicator weights and thresholds, carried over from the original rule
// set; not calibrated against real-world data.
const (
	weightUrgency      = 25
	weightFinancial    = 20
	weightLinks        = 15
	weightPersonalInfo = 30
	weightThreats      = 25
	weightMisspellings = 15

	// classifyThreshold gates scam-type reporting: at or below it the
	// type is "Not a scam".
	classifyThreshold = 30

	// minMessageLength is enforced before any scoring runs.
	minMessageLength = 10
)

// Issue strings, one per triggered detector, in evaluation order.
const (
	issueUrgency      = "Contains urgent language"
	issueFinancial    = "Contains financial terms"
	issueLinks        = "Contains links"
	issuePersonalInfo = "Requests personal information"
	issueThreats      = "Contains threats or warnings"
	issueMisspellings = "Contains suspicious language patterns"
)

// ScamTypeNone is reported when the score stays at or below the
// classification threshold.
const ScamTypeNone = "Not a scam"

// ValidateMessage rejects messages too short to analyze meaningfully.
func ValidateMessage(text string) error {
	if len(strings.TrimSpace(text)) < minMessageLength {
		return fmt.Errorf("%w: please enter a longer message for accurate analysis", domain.ErrInvalidInput)
	}
	return nil
}

// Detect runs the six boolean detectors over text.
func Detect(text string) domain.Indicators {
	return domain.Indicators{
		ContainsUrgency:      patterns.Urgency.MatchString(text),
		ContainsFinancial:    patterns.Financial.MatchString(text),
		ContainsLinks:        patterns.Links.MatchString(text),
		ContainsPersonalInfo: patterns.PersonalInfo.MatchString(text),
		ContainsThreats:      patterns.Threats.MatchString(text),
		ContainsMisspellings: patterns.Misspellings.MatchString(text),
	}
}

// Assess scores text with the local heuristic detectors. Pure: repeated
// calls with the same text yield the same rule outcomes.
func Assess(text string) domain.RiskAssessment {
	ind := Detect(text)

	score := 0
	if ind.ContainsUrgency {
		score += weightUrgency
	}
	if ind.ContainsFinancial {
		score += weightFinancial
	}
	if ind.ContainsLinks {
		score += weightLinks
	}
	if ind.ContainsPersonalInfo {
		score += weightPersonalInfo
	}
	if ind.ContainsThreats {
		score += weightThreats
	}
	if ind.ContainsMisspellings {
		score += weightMisspellings
	}

	a := domain.NewAssessment(domain.KindMessage, text, score, domain.SourceLocalHeuristic)
	a.Issues = issuesFor(ind)
	a.Message = &domain.MessageDetails{
		ScamType:           Classify(text, a.RiskScore),
		Indicators:         ind,
		Explanation:        localExplanation(a.RiskScore),
		SuggestedResponse:  localSuggestion(a.RiskScore),
		SuspiciousURLs:     ExtractURLs(text, a.RiskScore > 40),
		HighlightedMessage: Highlight(text, ind),
	}
	return a
}

// Classify picks the first matching scam category, reported only when
// the score clears the classification threshold.
func Classify(text string, score int) string {
	if score <= classifyThreshold {
		return ScamTypeNone
	}
	for _, rule := range patterns.ScamTypeRules {
		if rule.Pattern.MatchString(text) {
			return rule.Label
		}
	}
	return "Unknown"
}

// ExtractURLs collects absolute URLs from text, flagging each with the
// caller-supplied suspicion verdict.
func ExtractURLs(text string, suspicious bool) []domain.SuspiciousURL {
	matches := patterns.MessageURL.FindAllString(text, -1)
	urls := make([]domain.SuspiciousURL, 0, len(matches))
	for _, m := range matches {
		urls = append(urls, domain.SuspiciousURL{URL: m, Suspicious: suspicious})
	}
	return urls
}

func localExplanation(score int) string {
	switch {
	case score > 70:
		return "This message contains multiple high-risk indicators commonly associated with scams."
	case score > 40:
		return "This message contains some suspicious elements that might indicate a scam."
	default:
		return "This message doesn't contain strong indicators of being a scam."
	}
}

func localSuggestion(score int) string {
	switch {
	case score > 70:
		return "Do not respond or click any links. If it claims to be from a legitimate company, contact them directly through official channels."
	case score > 40:
		return "Exercise caution. Verify the sender through official channels before responding or clicking links."
	default:
		return "The message appears to be legitimate, but always be cautious with unexpected communications."
	}
}
