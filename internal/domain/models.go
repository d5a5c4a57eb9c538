package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RiskLevel is the coarse classification derived from a risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Source records which path produced an assessment. Exactly one is set
// per assessment so the caller can disclose when mock/local data was used.
type Source string

const (
	SourceExternalService Source = "external_service"
	SourceLocalHeuristic  Source = "local_heuristic"
)

// Kind discriminates the analyzer-specific detail variant of a RiskAssessment.
type Kind string

const (
	KindPhone   Kind = "phone"
	KindMessage Kind = "message"
	KindURL     Kind = "url"
	KindImage   Kind = "image"
)

// ErrInvalidInput marks malformed user input. It blocks the assessment
// before any scoring logic runs and is reported directly to the caller.
var ErrInvalidInput = errors.New("invalid input")

// RiskAssessment is the unified result every analyzer produces,
// regardless of whether the external service or the local heuristic
// path computed it. Constructed fresh per submitted input, immutable
// once returned, never persisted.
//
// Exactly one of the detail pointers is non-nil, selected by Kind.
type RiskAssessment struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	Subject    string    `json:"subject"`
	RiskScore  int       `json:"risk_score"` // 0-100, higher = more dangerous
	RiskLevel  RiskLevel `json:"risk_level"`
	Issues     []string  `json:"issues"` // one entry per triggered rule, in evaluation order
	Source     Source    `json:"source"`
	AnalyzedAt time.Time `json:"analyzed_at"`

	Phone   *PhoneDetails   `json:"phone,omitempty"`
	Message *MessageDetails `json:"message,omitempty"`
	URL     *URLDetails     `json:"url,omitempty"`
	Image   *ImageDetails   `json:"image,omitempty"`
}

// PhoneDetails carries phone-specific enrichment. The informational
// fields (carrier, country, line type) may come from the validation API
// or from seeded synthetic data; they are labelled by the assessment's
// Source.
type PhoneDetails struct {
	Valid               bool   `json:"valid"`
	InternationalFormat string `json:"international_format"`
	LineType            string `json:"line_type"`
	Country             string `json:"country"`
	CountryCode         string `json:"country_code"`
	Carrier             string `json:"carrier"`
	Location            string `json:"location"`
	ScamReports         int    `json:"scam_reports"`
}

// Indicators are the six named boolean detectors of the message analyzer.
type Indicators struct {
	ContainsUrgency      bool `json:"contains_urgency"`
	ContainsFinancial    bool `json:"contains_financial"`
	ContainsLinks        bool `json:"contains_links"`
	ContainsPersonalInfo bool `json:"contains_personal_info"`
	ContainsThreats      bool `json:"contains_threats"`
	ContainsMisspellings bool `json:"contains_misspellings"`
}

// SuspiciousURL is a URL extracted from an analyzed message.
type SuspiciousURL struct {
	URL        string `json:"url"`
	Suspicious bool   `json:"suspicious"`
}

// MessageDetails carries message-analyzer specifics, including the
// highlighted copy of the input (matched substrings wrapped in
// category markers - a rendering transform, not a scoring input).
type MessageDetails struct {
	ScamType           string          `json:"scam_type"`
	Indicators         Indicators      `json:"indicators"`
	Explanation        string          `json:"explanation"`
	SuggestedResponse  string          `json:"suggested_response"`
	SuspiciousURLs     []SuspiciousURL `json:"suspicious_urls"`
	HighlightedMessage string          `json:"highlighted_message"`
}

// SSLInfo describes the TLS posture of a scanned URL.
type SSLInfo struct {
	Valid      bool   `json:"valid"`
	Issuer     string `json:"issuer"`
	ExpiryDate string `json:"expiry_date"`
}

// BlacklistInfo summarizes threat-list membership.
type BlacklistInfo struct {
	Listed bool `json:"listed"`
	Count  int  `json:"count"`
}

// ScanStats are aggregate per-engine verdict counts.
type ScanStats struct {
	TotalEngines int `json:"total_engines"`
	Malicious    int `json:"malicious"`
	Suspicious   int `json:"suspicious"`
	Harmless     int `json:"harmless"`
	Undetected   int `json:"undetected"`
}

// URLDetails carries URL-scanner specifics. SecurityScore runs the
// opposite direction of RiskScore: 0-100, higher is safer.
type URLDetails struct {
	IsPhishing             bool          `json:"is_phishing"`
	IsMalware              bool          `json:"is_malware"`
	IsScam                 bool          `json:"is_scam"`
	HasSuspiciousRedirects bool          `json:"has_suspicious_redirects"`
	SecurityScore          int           `json:"security_score"`
	Domain                 string        `json:"domain"`
	RegistrationDate       string        `json:"registration_date"`
	SSL                    SSLInfo       `json:"ssl"`
	Blacklists             BlacklistInfo `json:"blacklists"`
	ScanDetails            ScanStats     `json:"scan_details"`
}

// ImageDetails carries image/QR-analyzer specifics.
type ImageDetails struct {
	FileName          string `json:"file_name"`
	MimeType          string `json:"mime_type"`
	FileSize          int64  `json:"file_size"`
	IsQRCode          bool   `json:"is_qr_code"`
	QRContent         string `json:"qr_content"`
	SuspiciousText    string `json:"suspicious_text"`
	IsManipulated     bool   `json:"is_manipulated"`
	ManipulationScore int    `json:"manipulation_score"`
	Explanation       string `json:"explanation"`
}

// ClampScore bounds a raw accumulated score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// LevelForScore converts a risk score to a categorical level using the
// shared thresholds of the phone and message analyzers. The URL scanner
// applies its own threat-flag rule instead (see urlscan).
func LevelForScore(score int) RiskLevel {
	switch {
	case score > 70:
		return RiskHigh
	case score > 40:
		return RiskMedium
	default:
		return RiskLow
	}
}

// NewAssessment constructs the common envelope for an assessment.
// Callers fill the detail variant matching kind.
func NewAssessment(kind Kind, subject string, score int, source Source) RiskAssessment {
	clamped := ClampScore(score)
	return RiskAssessment{
		ID:         uuid.New(),
		Kind:       kind,
		Subject:    subject,
		RiskScore:  clamped,
		RiskLevel:  LevelForScore(clamped),
		Issues:     []string{},
		Source:     source,
		AnalyzedAt: time.Now().UTC(),
	}
}
