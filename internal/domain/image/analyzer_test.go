package image

import (
	"testing"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name      string
		meta      FileMeta
		expectErr bool
	}{
		{"PNG within limit", FileMeta{Name: "qr.png", MimeType: "image/png", Size: 1024}, false},
		{"JPEG at limit", FileMeta{Name: "a.jpg", MimeType: "image/jpeg", Size: MaxFileSize}, false},
		{"Oversized image", FileMeta{Name: "big.png", MimeType: "image/png", Size: MaxFileSize + 1}, true},
		{"Not an image", FileMeta{Name: "doc.pdf", MimeType: "application/pdf", Size: 1024}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.meta)
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromReport(t *testing.T) {
	meta := FileMeta{Name: "qr.png", MimeType: "image/png", Size: 2048}
	rep := Report{
		IsQRCode:       true,
		RiskLevel:      domain.RiskMedium,
		RiskScore:      35,
		QRContent:      "http://g00gle-login.tk",
		SecurityIssues: []string{"QR code resolves to a lookalike domain"},
		Explanation:    "QR payload points at a suspicious site.",
	}

	a := FromReport(meta, rep, domain.SourceExternalService)

	assert.Equal(t, domain.KindImage, a.Kind)
	assert.Equal(t, "qr.png", a.Subject)
	assert.Equal(t, 35, a.RiskScore)
	assert.Equal(t, domain.RiskMedium, a.RiskLevel, "level comes from the report, not the score")
	assert.Equal(t, []string{"QR code resolves to a lookalike domain"}, a.Issues)
	require.NotNil(t, a.Image)
	assert.True(t, a.Image.IsQRCode)
	assert.Equal(t, "http://g00gle-login.tk", a.Image.QRContent)
	assert.Equal(t, 35, a.Image.ManipulationScore)
	assert.Equal(t, int64(2048), a.Image.FileSize)
}

func TestFromReport_NilIssues(t *testing.T) {
	a := FromReport(FileMeta{Name: "x.png", MimeType: "image/png"}, Report{RiskLevel: domain.RiskLow}, domain.SourceExternalService)

	assert.NotNil(t, a.Issues)
	assert.Empty(t, a.Issues)
}

func TestFallback(t *testing.T) {
	it := NewInterpreter(11)
	meta := FileMeta{Name: "qr.png", MimeType: "image/png", Size: 2048}

	for i := 0; i < 20; i++ {
		a := it.Fallback(meta)

		assert.GreaterOrEqual(t, a.RiskScore, fallbackScoreBase)
		assert.Less(t, a.RiskScore, fallbackScoreBase+fallbackScoreSpread)
		assert.Equal(t, domain.RiskMedium, a.RiskLevel)
		assert.Equal(t, domain.SourceLocalHeuristic, a.Source)
		assert.Equal(t, []string{fallbackIssue}, a.Issues)
		require.NotNil(t, a.Image)
		assert.Equal(t, fallbackExplanation, a.Image.Explanation)
	}
}

func TestFallback_Deterministic(t *testing.T) {
	meta := FileMeta{Name: "qr.png", MimeType: "image/png"}

	a1 := NewInterpreter(99).Fallback(meta)
	a2 := NewInterpreter(99).Fallback(meta)

	assert.Equal(t, a1.RiskScore, a2.RiskScore)
}
