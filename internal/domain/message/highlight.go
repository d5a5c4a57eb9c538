package message

import (
	"regexp"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/scamshield/scamshield/internal/domain/patterns"
)

// Highlight wraps matched substrings of text in category-specific
// markers of the form <mark:category>...</mark>. A rendering transform
// only; it never feeds back into scoring. Categories are applied in a
// fixed order, and a category is only marked when its detector fired.
func Highlight(text string, ind domain.Indicators) string {
	out := text
	if ind.ContainsLinks {
		out = wrap(out, patterns.HighlightURL, "link")
	}
	if ind.ContainsUrgency {
		out = wrap(out, patterns.HighlightUrgency, "urgency")
	}
	if ind.ContainsFinancial {
		out = wrap(out, patterns.HighlightFinancial, "financial")
	}
	if ind.ContainsPersonalInfo {
		out = wrap(out, patterns.HighlightPersonalInfo, "personal-info")
	}
	if ind.ContainsThreats {
		out = wrap(out, patterns.HighlightThreats, "threat")
	}
	return out
}

func wrap(text string, re *regexp.Regexp, category string) string {
	return re.ReplaceAllString(text, "<mark:"+category+">$0</mark>")
}
