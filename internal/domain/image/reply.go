package image

import (
	"encoding/json"
	"strings"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/scamshield/scamshield/internal/domain/jsontext"
	"github.com/scamshield/scamshield/internal/domain/patterns"
)

// modelReply is the fixed schema requested from the multimodal service.
// Pointer and raw fields tolerate the model omitting keys or emitting
// the wrong JSON type; defaults are applied after unmarshalling.
type modelReply struct {
	IsQRCode       bool            `json:"isQRCode"`
	RiskLevel      string          `json:"riskLevel"`
	RiskScore      *float64        `json:"riskScore"`
	QRContent      string          `json:"qrContent"`
	SuspiciousText string          `json:"suspiciousText"`
	SecurityIssues json.RawMessage `json:"securityIssues"`
	IsManipulated  bool            `json:"isManipulated"`
	Explanation    string          `json:"explanation"`
}

// ParseReply normalizes a raw model reply into a Report. It first
// extracts and unmarshals the embedded JSON object; when that fails it
// falls back to the text-heuristic recovery pass. Every Report field is
// defaulted, so the returned value is always usable.
func (it *Interpreter) ParseReply(reply string) Report {
	raw, err := jsontext.ExtractObject(reply)
	if err != nil {
		return it.recoverFromText(reply)
	}
	var parsed modelReply
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return it.recoverFromText(reply)
	}

	rep := Report{
		IsQRCode:       parsed.IsQRCode,
		RiskLevel:      levelOrDefault(parsed.RiskLevel),
		RiskScore:      50,
		QRContent:      parsed.QRContent,
		SuspiciousText: parsed.SuspiciousText,
		SecurityIssues: issueList(parsed.SecurityIssues),
		IsManipulated:  parsed.IsManipulated,
		Explanation:    explanationOrDefault(parsed.Explanation),
	}
	if parsed.RiskScore != nil {
		rep.RiskScore = domain.ClampScore(int(*parsed.RiskScore))
	}
	return rep
}

// recoverFromText is the heuristic recovery pass for replies without
// usable JSON: risk level from keyword scan, any URL substring as QR
// content, and risk-related lines collected as issues.
func (it *Interpreter) recoverFromText(reply string) Report {
	lower := strings.ToLower(reply)

	it.mu.Lock()
	rep := Report{RiskLevel: domain.RiskMedium, RiskScore: 30 + it.rng.Intn(40)}
	switch {
	case strings.Contains(lower, "high risk"):
		rep.RiskLevel = domain.RiskHigh
		rep.RiskScore = 75 + it.rng.Intn(25)
	case strings.Contains(lower, "low risk"):
		rep.RiskLevel = domain.RiskLow
		rep.RiskScore = it.rng.Intn(30)
	}
	it.mu.Unlock()

	rep.IsQRCode = strings.Contains(lower, "qr code") && strings.Contains(lower, "yes")
	if url := patterns.MessageURL.FindString(reply); url != "" {
		rep.QRContent = url
	}

	issues := []string{}
	captureExplanation := false
	for _, line := range strings.Split(reply, "\n") {
		lowered := strings.ToLower(line)
		if strings.Contains(lowered, "suspicious") ||
			strings.Contains(lowered, "risk") ||
			strings.Contains(lowered, "issue") ||
			strings.Contains(lowered, "concern") {
			issues = append(issues, strings.TrimSpace(line))
		}
		if strings.Contains(lowered, "explanation") {
			captureExplanation = true
			continue
		}
		if captureExplanation && len(strings.TrimSpace(line)) > 10 {
			rep.Explanation = strings.TrimSpace(line)
			captureExplanation = false
		}
	}
	rep.SecurityIssues = issues
	rep.Explanation = explanationOrDefault(rep.Explanation)
	return rep
}

func levelOrDefault(level string) domain.RiskLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "high":
		return domain.RiskHigh
	case "low":
		return domain.RiskLow
	default:
		return domain.RiskMedium
	}
}

func explanationOrDefault(explanation string) string {
	if explanation == "" {
		return "Analysis complete."
	}
	return explanation
}

// issueList tolerates the model emitting securityIssues as an array, a
// single string, or nothing at all.
func issueList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return []string{}
}
