package image

import (
	"testing"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseReply_JSON(t *testing.T) {
	it := NewInterpreter(1)
	reply := "```json\n" + `{
  "isQRCode": true,
  "riskLevel": "High",
  "riskScore": 85,
  "qrContent": "http://g00gle-login.tk",
  "suspiciousText": "Scan to claim your prize",
  "securityIssues": ["Lookalike domain", "Prize bait wording"],
  "isManipulated": false,
  "explanation": "The QR code leads to a phishing page."
}` + "\n```"

	rep := it.ParseReply(reply)

	assert.True(t, rep.IsQRCode)
	assert.Equal(t, domain.RiskHigh, rep.RiskLevel)
	assert.Equal(t, 85, rep.RiskScore)
	assert.Equal(t, "http://g00gle-login.tk", rep.QRContent)
	assert.Equal(t, []string{"Lookalike domain", "Prize bait wording"}, rep.SecurityIssues)
	assert.Equal(t, "The QR code leads to a phishing page.", rep.Explanation)
}

func TestParseReply_Defaults(t *testing.T) {
	it := NewInterpreter(1)

	rep := it.ParseReply(`{"isQRCode": false}`)

	assert.Equal(t, domain.RiskMedium, rep.RiskLevel)
	assert.Equal(t, 50, rep.RiskScore, "missing score defaults to the midpoint")
	assert.Equal(t, "Analysis complete.", rep.Explanation)
	assert.NotNil(t, rep.SecurityIssues)
	assert.Empty(t, rep.SecurityIssues)
}

func TestParseReply_IssueShapes(t *testing.T) {
	it := NewInterpreter(1)

	tests := []struct {
		name     string
		reply    string
		expected []string
	}{
		{"Array", `{"securityIssues": ["a", "b"]}`, []string{"a", "b"}},
		{"Single string", `{"securityIssues": "just one"}`, []string{"just one"}},
		{"Wrong type", `{"securityIssues": 7}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, it.ParseReply(tt.reply).SecurityIssues)
		})
	}
}

func TestParseReply_TextRecovery(t *testing.T) {
	it := NewInterpreter(1)
	reply := "This image is high risk.\n" +
		"It contains a QR code: yes, pointing at http://g00gle-login.tk\n" +
		"One suspicious element is the prize wording.\n" +
		"Explanation follows below.\n" +
		"The code redirects victims to a credential harvesting page.\n"

	rep := it.ParseReply(reply)

	assert.Equal(t, domain.RiskHigh, rep.RiskLevel)
	assert.GreaterOrEqual(t, rep.RiskScore, 75)
	assert.True(t, rep.IsQRCode)
	assert.Equal(t, "http://g00gle-login.tk", rep.QRContent)
	assert.NotEmpty(t, rep.SecurityIssues)
	assert.Equal(t, "The code redirects victims to a credential harvesting page.", rep.Explanation)
}

func TestParseReply_TextRecoveryLowRisk(t *testing.T) {
	it := NewInterpreter(1)

	rep := it.ParseReply("This appears to be a low risk photograph with no embedded codes.")

	assert.Equal(t, domain.RiskLow, rep.RiskLevel)
	assert.Less(t, rep.RiskScore, 30)
	assert.False(t, rep.IsQRCode)
	assert.Equal(t, "Analysis complete.", rep.Explanation)
}
