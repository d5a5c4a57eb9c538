package patterns

import "regexp"

// Detector regexes for the six message indicators. Matching any of
// these flips the corresponding boolean; each indicator carries a fixed
// score weight in the message scorer.
var (
	Urgency      = regexp.MustCompile(`(?i)urgent|immediately|act now|limited time`)
	Financial    = regexp.MustCompile(`(?i)money|payment|credit card|bank|account|cash|funds`)
	Links        = regexp.MustCompile(`(?i)http|www|\.[a-z]{2,}`)
	PersonalInfo = regexp.MustCompile(`(?i)ssn|social security|password|login|credentials`)
	Threats      = regexp.MustCompile(`(?i)terminate|suspend|cancel|close|report|police`)
	// Misspellings approximates low-quality phrasing via repeated
	// gerund or past-tense word pairs.
	Misspellings = regexp.MustCompile(`(?i)[a-z]{3,}ing\s+[a-z]{3,}ing\s+|[a-z]{2,}ed\s+[a-z]{2,}ed\s+`)
)

// MessageURL extracts absolute URLs from message text.
var MessageURL = regexp.MustCompile(`https?://[^\s]+`)

// Highlight regexes are broader than the detectors: once an indicator
// fires, these mark every related substring in the rendered copy.
var (
	HighlightURL          = regexp.MustCompile(`https?://[^\s]+`)
	HighlightUrgency      = regexp.MustCompile(`(?i)urgent|immediately|act now|limited time|deadline|expire`)
	HighlightFinancial    = regexp.MustCompile(`(?i)money|payment|credit card|bank|account|cash|funds|deposit|transfer`)
	HighlightPersonalInfo = regexp.MustCompile(`(?i)ssn|social security|password|login|credentials|id|identity|verification`)
	HighlightThreats      = regexp.MustCompile(`(?i)terminate|suspend|cancel|close|block|report|police|legal|lawsuit|arrest`)
)

// ScamTypeRule maps a keyword pattern to a scam-category label.
type ScamTypeRule struct {
	Pattern *regexp.Regexp
	Label   string
}

// ScamTypeRules is evaluated in order; the first match wins. The label
// is only reported when the message scored above the classification
// threshold.
var ScamTypeRules = []ScamTypeRule{
	{regexp.MustCompile(`(?i)bank|account|verify`), "Banking Scam"},
	{regexp.MustCompile(`(?i)delivery|package|shipment`), "Delivery Scam"},
	{regexp.MustCompile(`(?i)prize|won|lottery|winner`), "Prize Scam"},
	{regexp.MustCompile(`(?i)tax|irs|government`), "Tax Scam"},
	{regexp.MustCompile(`(?i)virus|security|computer|device`), "Tech Support Scam"},
}
