package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScamNumberPatterns(t *testing.T) {
	tests := []struct {
		name        string
		number      string
		expectMatch bool
	}{
		{"Fake toll-free with spaces", "+1 800 555 1234", true},
		{"Fake toll-free compact", "+18005551234", true},
		{"UK premium personal range", "+4470123456789", true},
		{"US premium rate", "+19001234567", true},
		{"Indian telemarketing prefix", "+9114012345678", true},
		{"Ordinary US number", "+12128675309", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := false
			for _, p := range ScamNumberPatterns {
				if p.MatchString(tt.number) {
					matched = true
					break
				}
			}
			assert.Equal(t, tt.expectMatch, matched)
		})
	}
}

func TestRepeatingDigits(t *testing.T) {
	assert.True(t, RepeatingDigits.MatchString("16502530000"))
	assert.True(t, RepeatingDigits.MatchString("5555123456"))
	assert.False(t, RepeatingDigits.MatchString("12128675309"))
	assert.False(t, RepeatingDigits.MatchString("555123"))
}

func TestPhoneInput(t *testing.T) {
	assert.True(t, PhoneInput.MatchString("+1 212 867 5309"))
	assert.True(t, PhoneInput.MatchString("(212) 867-5309"))
	assert.False(t, PhoneInput.MatchString("not a number"))
	assert.False(t, PhoneInput.MatchString("12345"))
}

func TestTyposquatPatterns(t *testing.T) {
	tests := []struct {
		name        string
		host        string
		expectMatch bool
	}{
		{"Zero substitution", "g00gle-login.tk", true},
		{"One substitution", "paypa1.com", true},
		{"Separator insertion", "face-book.xyz", true},
		{"Unrelated host", "example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := false
			for _, p := range TyposquatPatterns {
				if p.MatchString(tt.host) {
					matched = true
					break
				}
			}
			assert.Equal(t, tt.expectMatch, matched)
		})
	}
}

func TestUnusualTLD(t *testing.T) {
	assert.True(t, UnusualTLD.MatchString("g00gle-login.tk"))
	assert.True(t, UnusualTLD.MatchString("free-stuff.xyz"))
	assert.False(t, UnusualTLD.MatchString("example.com"))
}
