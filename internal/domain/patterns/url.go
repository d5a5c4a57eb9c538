package patterns

import (
	"regexp"
	"strings"
)

// BaitPatterns flag phishing bait wording, long machine-generated runs,
// known link shorteners and free high-abuse TLDs. Tested against the
// full normalized URL; any single match counts once.
var BaitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)free.*download`),
	regexp.MustCompile(`(?i)win.*prize`),
	regexp.MustCompile(`(?i)login.*verify`),
	regexp.MustCompile(`(?i)account.*suspend`),
	regexp.MustCompile(`(?i)urgent`),
	regexp.MustCompile(`(?i)password`),
	regexp.MustCompile(`(?i)bank`),
	regexp.MustCompile(`(?i)crypto`),
	regexp.MustCompile(`\d{10,}`),            // long numeric runs
	regexp.MustCompile(`[a-zA-Z0-9]{20,}`),   // long alphanumeric runs
	regexp.MustCompile(`(?i)bit\.ly`),
	regexp.MustCompile(`(?i)tinyurl`),
	regexp.MustCompile(`(?i)goo\.gl`),
	regexp.MustCompile(`(?i)\.(tk|ml|ga|cf|gq)$`),
}

// UnusualTLD matches domains under TLDs with outsized abuse rates,
// including the free registries.
var UnusualTLD = regexp.MustCompile(`(?i)\.(xyz|top|loan|work|date|racing|win|bid|stream|download|tk|ml|ga|cf|gq)$`)

// TyposquatTargets are high-value brands whose lookalike domains are a
// staple of phishing campaigns.
var TyposquatTargets = []string{
	"google", "facebook", "amazon", "microsoft", "apple", "paypal", "netflix",
}

// leetClasses maps letters to the character classes attackers substitute
// for them (g00gle, paypa1, netf1ix).
var leetClasses = map[rune]string{
	'a': "[a4@]",
	'e': "[e3]",
	'g': "[g9]",
	'i': "[i1l]",
	'l': "[l1i]",
	'o': "[o0]",
	's': "[s5]",
	't': "[t7]",
}

// TyposquatPatterns holds one tolerant regex per target brand: each
// letter may appear as a lookalike substitute, with non-alphanumeric
// separators allowed between letters.
var TyposquatPatterns = buildTyposquatPatterns()

func buildTyposquatPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(TyposquatTargets))
	for _, target := range TyposquatTargets {
		var b strings.Builder
		b.WriteString("(?i)")
		for i, r := range target {
			if i > 0 {
				b.WriteString(`[^a-zA-Z0-9]*`)
			}
			if class, ok := leetClasses[r]; ok {
				b.WriteString(class)
			} else {
				b.WriteRune(r)
			}
		}
		out = append(out, regexp.MustCompile(b.String()))
	}
	return out
}
