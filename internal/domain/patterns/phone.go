// Package patterns holds the static pattern libraries the local
// heuristic scorers match against: known scam-number regexes, keyword
// lists, suspicious TLD tables and typosquat targets. Pure data, no
// state; every table is read-only after init.
package patterns

import "regexp"

// ScamNumberPatterns are formats known to be favored by scam operations:
// toll-free spoofs, premium-rate prefixes and country-specific prefixes.
// Matched against the raw input string, spacing tolerated.
var ScamNumberPatterns = []*regexp.Regexp{
	// Generic
	regexp.MustCompile(`^\+1\s?800\s?\d{3}\s?\d{4}$`),         // fake toll-free
	regexp.MustCompile(`^\+44\s?20\s?\d{4}\s?\d{4}$`),         // fake UK London
	regexp.MustCompile(`^\+1\s?555\s?\d{3}\s?\d{4}$`),         // North American fictional range
	regexp.MustCompile(`^\+\d{1,3}\s?123\s?456\s?\d{4}$`),     // generic fake sequence
	// India
	regexp.MustCompile(`^\+?91\s?140\d{8}$`),                  // telemarketing/scam 140 prefix
	regexp.MustCompile(`^\+?91\s?[6-9]0{5}\d{4}$`),            // five-zero runs
	regexp.MustCompile(`^\+?91\s?1\d{9}$`),                    // mobiles do not start with 1
	regexp.MustCompile(`^\+?91\s?000\d{7}$`),                  // 000 prefix
	// UK
	regexp.MustCompile(`^\+44\s?70\d{9}$`),                    // personal-number premium range
	regexp.MustCompile(`^\+44\s?84[5789]\d{7}$`),              // high-rate service numbers
	// US
	regexp.MustCompile(`^\+1\s?900\d{7}$`),                    // premium rate
	regexp.MustCompile(`^\+1\s?976\d{7}$`),                    // legacy premium services
}

// SuspiciousAreaCodes maps a country calling code (with leading +) to
// national-number prefixes frequently abused in that country.
var SuspiciousAreaCodes = map[string][]string{
	"+1":  {"900", "976", "809", "284", "649"},
	"+44": {"70", "845", "870", "871", "872", "873"},
	"+91": {"140", "121", "131", "132", "133", "134", "135"},
}

// RecognizedCountryCodes is the allow-list of calling codes the checker
// treats as ordinary. A parsed number outside this list scores as
// suspicious.
var RecognizedCountryCodes = []string{
	"+1", "+44", "+91", "+86", "+49", "+33", "+61", "+81", "+7", "+55",
	"+52", "+39", "+34", "+31", "+27", "+82", "+65", "+64", "+971",
}

// RepeatingDigits matches four or more consecutive identical digits.
var RepeatingDigits = regexp.MustCompile(`(0{4,}|1{4,}|2{4,}|3{4,}|4{4,}|5{4,}|6{4,}|7{4,}|8{4,}|9{4,})`)

// PhoneInput is the submission-form shape check: optional +, then 10-15
// digits/spaces/dashes/parentheses. Inputs failing this never reach the
// scorer.
var PhoneInput = regexp.MustCompile(`^\+?[0-9\s\-()]{10,15}$`)
