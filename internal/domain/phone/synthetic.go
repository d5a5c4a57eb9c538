package phone

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/nyaruka/phonenumbers"
	"github.com/scamshield/scamshield/internal/domain"
)

// Synthetic lookup tables for the local-only path. The generated fields
// are plausible placeholders, not real subscriber data.
var (
	syntheticCountries = []struct {
		Name string
		ISO  string
	}{
		{"United States", "US"},
		{"Canada", "CA"},
		{"United Kingdom", "GB"},
		{"Australia", "AU"},
		{"Germany", "DE"},
		{"France", "FR"},
		{"India", "IN"},
	}
	syntheticCarriers  = []string{"AT&T", "Verizon", "T-Mobile", "Sprint", "Vodafone", "Orange", "Airtel", "Jio"}
	syntheticLineTypes = []string{"mobile", "landline"}
)

// Scorer runs the local heuristic path, generating synthetic lookup
// data from an injected pseudo-random source so results are
// reproducible under a fixed seed. Safe for concurrent use; rand.Rand
// itself is not, so draws are serialized.
type Scorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewScorer creates a local phone scorer seeded with seed.
func NewScorer(seed int64) *Scorer {
	return &Scorer{rng: rand.New(rand.NewSource(seed))}
}

// Assess validates number and scores it against synthetic lookup data.
// Returns domain.ErrInvalidInput for inputs that fail the form check.
func (s *Scorer) Assess(number string) (domain.RiskAssessment, error) {
	if err := ValidateNumber(number); err != nil {
		return domain.RiskAssessment{}, err
	}
	lookup := s.syntheticLookup(number)
	return Score(number, lookup, domain.SourceLocalHeuristic), nil
}

// syntheticLookup fabricates validation-API-shaped data. The country is
// seeded by the parsed region when available so repeated checks of the
// same number describe the same country; carrier and line type are
// pseudo-random draws.
func (s *Scorer) syntheticLookup(number string) LookupData {
	formatted := Canonical(number)
	parsed, err := phonenumbers.Parse(formatted, "")
	if err != nil {
		parsed = nil
	}

	s.mu.Lock()
	countryIdx := s.rng.Intn(len(syntheticCountries))
	carrier := syntheticCarriers[s.rng.Intn(len(syntheticCarriers))]
	lineType := syntheticLineTypes[s.rng.Intn(len(syntheticLineTypes))]
	scamReports := s.rng.Intn(50)
	s.mu.Unlock()

	valid := false
	international := formatted
	if !strings.HasPrefix(international, "+") {
		international = "+" + international
	}
	countryPrefix := "+1"

	if parsed != nil {
		valid = phonenumbers.IsValidNumber(parsed)
		international = phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
		countryPrefix = prefixOf(parsed)
		if region := phonenumbers.GetRegionCodeForNumber(parsed); region != "" {
			for i, c := range syntheticCountries {
				if c.ISO == region {
					countryIdx = i
					break
				}
			}
		}
	}

	local := formatted
	if n := len(local); n > 10 {
		local = local[n-10:]
	}

	return LookupData{
		Valid:               valid,
		Number:              formatted,
		LocalFormat:         local,
		InternationalFormat: international,
		CountryName:         syntheticCountries[countryIdx].Name,
		CountryCode:         syntheticCountries[countryIdx].ISO,
		CountryPrefix:       countryPrefix,
		LineType:            lineType,
		Carrier:             carrier,
		Location:            "Mock City",
		ScamReports:         scamReports,
	}
}

func prefixOf(parsed *phonenumbers.PhoneNumber) string {
	return fmt.Sprintf("+%d", parsed.GetCountryCode())
}
