package phone

import (
	"testing"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_Assess_InvalidInput(t *testing.T) {
	s := NewScorer(1)

	_, err := s.Assess("garbage")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScorer_Assess_Deterministic(t *testing.T) {
	a1, err := NewScorer(42).Assess("+1 800 555 1234")
	require.NoError(t, err)
	a2, err := NewScorer(42).Assess("+1 800 555 1234")
	require.NoError(t, err)

	assert.Equal(t, a1.RiskScore, a2.RiskScore)
	assert.Equal(t, a1.RiskLevel, a2.RiskLevel)
	assert.Equal(t, a1.Issues, a2.Issues)
	assert.Equal(t, a1.Phone, a2.Phone)
}

func TestScorer_Assess_ScamNumber(t *testing.T) {
	a, err := NewScorer(7).Assess("+1 800 555 1234")
	require.NoError(t, err)

	assert.Equal(t, domain.KindPhone, a.Kind)
	assert.Equal(t, domain.SourceLocalHeuristic, a.Source)
	assert.GreaterOrEqual(t, a.RiskScore, weightScamPattern)
	assert.Contains(t, a.Issues, issueScamPattern)
	require.NotNil(t, a.Phone)
	assert.Equal(t, "Mock City", a.Phone.Location)
	assert.NotEqual(t, "Unknown", a.Phone.Carrier)
}

func TestSyntheticLookup_CountryFollowsParsedRegion(t *testing.T) {
	s := NewScorer(3)

	lookup := s.syntheticLookup("+44 20 7946 0958")

	assert.Equal(t, "United Kingdom", lookup.CountryName)
	assert.Equal(t, "GB", lookup.CountryCode)
	assert.Equal(t, "+44", lookup.CountryPrefix)
	assert.Equal(t, "Mock City", lookup.Location)
}
