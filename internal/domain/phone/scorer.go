// Package phone implements the phone-number risk scorer. Scoring rules
// operate on the parsed number and the raw digits; the informational
// lookup fields (carrier, country, line type) come either from the
// validation API or from seeded synthetic data and only feed the three
// enrichment rules, never the parse-based ones.
package phone

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/scamshield/scamshield/internal/domain"
	"github.com/scamshield/scamshield/internal/domain/patterns"
)

// Rule weights. Arbitrary constants carried over from the original
// rule set; not calibrated against real-world data.
const (
	weightScamPattern    = 50
	weightSuspiciousArea = 40
	weightDigitPattern   = 15
	weightInvalidFormat  = 35
	weightUnknownCountry = 25
	weightMobileLine     = 10
	weightNoCarrier      = 20
	weightNoLocation     = 15
)

// Issue strings, one per rule, appended in rule evaluation order.
const (
	issueScamPattern    = "Matches known scam number pattern"
	issueSuspiciousArea = "Contains suspicious area code often used in scams"
	issueDigitPattern   = "Contains suspicious sequential or repeating digit pattern"
	issueInvalidFormat  = "Invalid phone number format"
	issueUnknownCountry = "Suspicious country code"
	issueMobileLine     = "Mobile line type (commonly used for scam calls)"
	issueNoCarrier      = "No carrier information available"
	issueNoLocation     = "No location information available"
	issueIndia140       = "Indian number starting with 140 (commonly used in scams)"
)

// LookupData is the normalized shape of a number-validation response,
// produced either by the Numverify adapter or by the synthetic
// generator when no credential is configured.
type LookupData struct {
	Valid               bool
	Number              string
	LocalFormat         string
	InternationalFormat string
	CountryName         string
	CountryCode         string // ISO 3166-1 alpha-2
	CountryPrefix       string // calling code with leading +
	LineType            string
	Carrier             string
	Location            string
	ScamReports         int
}

var (
	nonDigit      = regexp.MustCompile(`\D`)
	stripInputFmt = regexp.MustCompile(`[\s\-()]`)
)

// ValidateNumber rejects inputs that do not look like a phone number at
// all. Returns domain.ErrInvalidInput; such inputs never reach scoring.
func ValidateNumber(number string) error {
	if !patterns.PhoneInput.MatchString(number) {
		return fmt.Errorf("%w: please enter a valid phone number", domain.ErrInvalidInput)
	}
	return nil
}

// Canonical strips spaces, dashes and parentheses from the raw input.
func Canonical(number string) string {
	return stripInputFmt.ReplaceAllString(strings.TrimSpace(number), "")
}

// Score computes the heuristic assessment for number. lookup supplies
// the informational fields; source records which path supplied them.
// Pure given its inputs: identical arguments yield identical rule
// outcomes and issue order.
func Score(number string, lookup LookupData, source domain.Source) domain.RiskAssessment {
	formatted := Canonical(number)
	digits := nonDigit.ReplaceAllString(number, "")

	parsed, perr := phonenumbers.Parse(formatted, "")
	if perr != nil {
		parsed = nil
	}
	validFormat := parsed != nil && phonenumbers.IsValidNumber(parsed)

	var countryPrefix, national string
	if parsed != nil {
		countryPrefix = fmt.Sprintf("+%d", parsed.GetCountryCode())
		national = phonenumbers.GetNationalSignificantNumber(parsed)
	}

	score := 0
	issues := []string{}

	if matchesScamPattern(number) {
		score += weightScamPattern
		issues = append(issues, issueScamPattern)
	}
	if parsed != nil && hasSuspiciousAreaCode(countryPrefix, national) {
		score += weightSuspiciousArea
		issues = append(issues, issueSuspiciousArea)
	}
	if hasDigitPattern(digits) {
		score += weightDigitPattern
		issues = append(issues, issueDigitPattern)
	}
	if !validFormat {
		score += weightInvalidFormat
		issues = append(issues, issueInvalidFormat)
	}
	if parsed != nil && !recognizedCountryCode(countryPrefix) {
		score += weightUnknownCountry
		issues = append(issues, issueUnknownCountry)
	}
	if lookup.LineType == "mobile" {
		score += weightMobileLine
		issues = append(issues, issueMobileLine)
	}
	if lookup.Carrier == "" {
		score += weightNoCarrier
		issues = append(issues, issueNoCarrier)
	}
	if lookup.Location == "" {
		score += weightNoLocation
		issues = append(issues, issueNoLocation)
	}
	// Informational only, no weight: the Indian 140 telemarketing range.
	if countryPrefix == "+91" && strings.HasPrefix(national, "140") {
		issues = append(issues, issueIndia140)
	}

	subject := lookup.InternationalFormat
	if subject == "" {
		subject = formatted
	}

	a := domain.NewAssessment(domain.KindPhone, subject, score, source)
	a.Issues = issues
	a.Phone = &domain.PhoneDetails{
		Valid:               lookup.Valid,
		InternationalFormat: subject,
		LineType:            orUnknown(lookup.LineType),
		Country:             orUnknown(lookup.CountryName),
		CountryCode:         orUnknown(lookup.CountryCode),
		Carrier:             orUnknown(lookup.Carrier),
		Location:            lookup.Location,
		ScamReports:         lookup.ScamReports,
	}
	return a
}

func matchesScamPattern(number string) bool {
	for _, p := range patterns.ScamNumberPatterns {
		if p.MatchString(number) {
			return true
		}
	}
	return false
}

func hasSuspiciousAreaCode(countryPrefix, national string) bool {
	prefixes, ok := patterns.SuspiciousAreaCodes[countryPrefix]
	if !ok {
		return false
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(national, prefix) {
			return true
		}
	}
	return false
}

// hasDigitPattern reports 4+ repeated digits or a 4-digit ascending or
// descending run anywhere in digits.
func hasDigitPattern(digits string) bool {
	if patterns.RepeatingDigits.MatchString(digits) {
		return true
	}
	for i := 0; i+3 < len(digits); i++ {
		d0, d1, d2, d3 := digits[i], digits[i+1], digits[i+2], digits[i+3]
		if d1 == d0+1 && d2 == d1+1 && d3 == d2+1 {
			return true
		}
		if d0 >= '3' && d1 == d0-1 && d2 == d1-1 && d3 == d2-1 {
			return true
		}
	}
	return false
}

func recognizedCountryCode(countryPrefix string) bool {
	for _, code := range patterns.RecognizedCountryCodes {
		if code == countryPrefix {
			return true
		}
	}
	return false
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
