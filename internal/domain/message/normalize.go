package message

import (
	"encoding/json"
	"fmt"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/scamshield/scamshield/internal/domain/jsontext"
)

// modelReply is the fixed schema requested from the text-analysis
// service. Field names match the rubric prompt exactly.
type modelReply struct {
	RiskLevel  string `json:"riskLevel"`
	RiskScore  int    `json:"riskScore"`
	ScamType   string `json:"scamType"`
	Indicators struct {
		ContainsUrgency      bool `json:"containsUrgency"`
		ContainsFinancial    bool `json:"containsFinancial"`
		ContainsLinks        bool `json:"containsLinks"`
		ContainsPersonalInfo bool `json:"containsPersonalInfo"`
		ContainsThreats      bool `json:"containsThreats"`
		ContainsMisspellings bool `json:"containsMisspellings"`
	} `json:"indicators"`
	Explanation       string `json:"explanation"`
	SuggestedResponse string `json:"suggestedResponse"`
}

// FromModelReply normalizes a raw text-analysis reply into the same
// assessment shape the local scorer produces. Pure given its inputs.
// Any extraction or schema failure is returned to the caller, which
// falls back entirely to the local scorer.
func FromModelReply(text, reply string) (domain.RiskAssessment, error) {
	raw, err := jsontext.ExtractObject(reply)
	if err != nil {
		return domain.RiskAssessment{}, fmt.Errorf("text analysis reply: %w", err)
	}
	var parsed modelReply
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.RiskAssessment{}, fmt.Errorf("text analysis reply: %w", err)
	}

	ind := domain.Indicators{
		ContainsUrgency:      parsed.Indicators.ContainsUrgency,
		ContainsFinancial:    parsed.Indicators.ContainsFinancial,
		ContainsLinks:        parsed.Indicators.ContainsLinks,
		ContainsPersonalInfo: parsed.Indicators.ContainsPersonalInfo,
		ContainsThreats:      parsed.Indicators.ContainsThreats,
		ContainsMisspellings: parsed.Indicators.ContainsMisspellings,
	}

	a := domain.NewAssessment(domain.KindMessage, text, parsed.RiskScore, domain.SourceExternalService)
	a.Issues = issuesFor(ind)

	scamType := parsed.ScamType
	if scamType == "" {
		scamType = ScamTypeNone
	}

	a.Message = &domain.MessageDetails{
		ScamType:           scamType,
		Indicators:         ind,
		Explanation:        parsed.Explanation,
		SuggestedResponse:  parsed.SuggestedResponse,
		SuspiciousURLs:     ExtractURLs(text, a.RiskLevel != domain.RiskLow),
		HighlightedMessage: Highlight(text, ind),
	}
	return a, nil
}

func issuesFor(ind domain.Indicators) []string {
	issues := []string{}
	if ind.ContainsUrgency {
		issues = append(issues, issueUrgency)
	}
	if ind.ContainsFinancial {
		issues = append(issues, issueFinancial)
	}
	if ind.ContainsLinks {
		issues = append(issues, issueLinks)
	}
	if ind.ContainsPersonalInfo {
		issues = append(issues, issuePersonalInfo)
	}
	if ind.ContainsThreats {
		issues = append(issues, issueThreats)
	}
	if ind.ContainsMisspellings {
		issues = append(issues, issueMisspellings)
	}
	return issues
}
