// Package jsontext extracts the JSON object embedded in a free-text AI
// model reply. Models wrap JSON in markdown fences, prepend prose, and
// emit trailing commas; callers treat any reply this package cannot
// salvage as a parse-recovery condition, never a fatal error.
package jsontext

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON reports a reply with no extractable JSON object. Callers
// recover via their text-heuristic pass or local fallback.
var ErrNoJSON = errors.New("no JSON object found in reply")

var (
	fencedObject  = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractObject returns the first JSON object found in content: a
// fenced block if present, otherwise the span from the first '{' to the
// last '}'. Trailing commas are stripped. Returns ErrNoJSON when no
// candidate object exists.
func ExtractObject(content string) (string, error) {
	if m := fencedObject.FindStringSubmatch(content); len(m) > 1 {
		return clean(m[1]), nil
	}
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return clean(content[start : end+1]), nil
}

func clean(raw string) string {
	return trailingComma.ReplaceAllString(raw, "$1")
}
