package urlscan

import (
	"testing"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Bare domain gets https", "example.com", "https://example.com"},
		{"Existing https kept", "https://example.com", "https://example.com"},
		{"Existing http kept", "http://example.com", "http://example.com"},
		{"Whitespace trimmed", "  example.com  ", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeURL(tt.raw))
		})
	}
}

func TestAssess_CleanURL(t *testing.T) {
	a := Assess("https://example.com")

	assert.Equal(t, 0, a.RiskScore)
	assert.Equal(t, domain.RiskLow, a.RiskLevel)
	assert.Empty(t, a.Issues)
	require.NotNil(t, a.URL)
	assert.Equal(t, 100, a.URL.SecurityScore)
	assert.Equal(t, "example.com", a.URL.Domain)
	assert.False(t, a.URL.IsPhishing)
	assert.True(t, a.URL.SSL.Valid)
	assert.Equal(t, 1, a.URL.ScanDetails.Harmless)
}

func TestAssess_PhishingLookalike(t *testing.T) {
	a := Assess("http://g00gle-login.tk")

	require.NotNil(t, a.URL)
	assert.True(t, a.URL.IsPhishing)
	assert.True(t, a.URL.IsScam)
	assert.Equal(t, domain.RiskHigh, a.RiskLevel)
	assert.LessOrEqual(t, a.URL.SecurityScore, threatScoreCap)
	assert.Equal(t, 100-a.URL.SecurityScore, a.RiskScore)
	assert.Contains(t, a.Issues, issueUnusualTLD)
	assert.Contains(t, a.Issues, issueTyposquat)
	assert.Contains(t, a.Issues, issueNoTLS)
	assert.True(t, a.URL.Blacklists.Listed)
	assert.False(t, a.URL.SSL.Valid)
}

func TestAssess_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Garbled scheme", "ht!tp://google.com"},
		{"Host with illegal characters", "https://exa mple.com"},
		{"No host at all", "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Assess(tt.raw)

			assert.Equal(t, domain.RiskHigh, a.RiskLevel)
			require.NotNil(t, a.URL)
			assert.Equal(t, invalidURLScore, a.URL.SecurityScore)
			assert.Equal(t, 100-invalidURLScore, a.RiskScore)
			assert.Equal(t, "Invalid URL", a.URL.Domain)
			assert.True(t, a.URL.IsPhishing)
			assert.True(t, a.URL.IsScam)
			assert.False(t, a.URL.IsMalware)
			assert.True(t, a.URL.Blacklists.Listed)
			assert.Equal(t, domain.SSLInfo{Valid: false, Issuer: "None", ExpiryDate: "N/A"}, a.URL.SSL)
			assert.Equal(t, domain.ScanStats{TotalEngines: 1, Malicious: 1}, a.URL.ScanDetails)
		})
	}
}

func TestAssess_NoTLSIsAtLeastMedium(t *testing.T) {
	a := Assess("http://example.com")

	assert.Equal(t, domain.RiskMedium, a.RiskLevel)
	assert.Contains(t, a.Issues, issueNoTLS)
	require.NotNil(t, a.URL)
	assert.Equal(t, 100-suspicionWeight, a.URL.SecurityScore)
	assert.False(t, a.URL.IsPhishing)
}

func TestAssess_DeepSubdomains(t *testing.T) {
	a := Assess("https://a.b.c.example.com")

	assert.Contains(t, a.Issues, issueSubdomains)
}
