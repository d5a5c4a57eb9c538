// Package image implements the QR-code/image analyzer. There is no
// local rule path: assessments come from the multimodal AI service,
// with a text-heuristic recovery pass for replies lacking usable JSON
// and a low-confidence synthetic fallback when the call fails outright.
package image

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/scamshield/scamshield/internal/domain"
)

// MaxFileSize is the upload ceiling for analyzed images.
const MaxFileSize = 5 * 1024 * 1024

// Fallback score range and texts.
const (
	fallbackScoreBase   = 30
	fallbackScoreSpread = 20
	fallbackIssue       = "Unable to analyze image with AI service"
	fallbackExplanation = "Local analysis indicates this image may contain security risks."
)

// FileMeta describes the uploaded file. The bytes themselves never
// reach this package; only the provider adapter sees them.
type FileMeta struct {
	Name     string
	MimeType string
	Size     int64
}

// ValidateFile enforces the upload constraints before any analysis.
func ValidateFile(meta FileMeta) error {
	if !strings.HasPrefix(meta.MimeType, "image/") {
		return fmt.Errorf("%w: please select an image file (JPEG, PNG, etc.)", domain.ErrInvalidInput)
	}
	if meta.Size > MaxFileSize {
		return fmt.Errorf("%w: file size exceeds 5MB limit", domain.ErrInvalidInput)
	}
	return nil
}

// Report is the normalized analysis result, with every field defaulted
// so downstream consumers never branch on absence.
type Report struct {
	IsQRCode       bool
	RiskLevel      domain.RiskLevel
	RiskScore      int
	QRContent      string
	SuspiciousText string
	SecurityIssues []string
	IsManipulated  bool
	Explanation    string
}

// Interpreter turns raw model replies into Reports and produces the
// synthetic fallback result. The injected pseudo-random source keeps
// the recovery-pass and fallback scores reproducible under a fixed
// seed. Safe for concurrent use.
type Interpreter struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewInterpreter creates an Interpreter seeded with seed.
func NewInterpreter(seed int64) *Interpreter {
	return &Interpreter{rng: rand.New(rand.NewSource(seed))}
}

// FromReport builds the unified assessment from a normalized report.
// The risk level is taken from the report rather than derived from the
// score: the model's level is authoritative for this analyzer and the
// recovery pass can emit Medium with scores below the shared threshold.
func FromReport(meta FileMeta, rep Report, source domain.Source) domain.RiskAssessment {
	a := domain.NewAssessment(domain.KindImage, meta.Name, rep.RiskScore, source)
	a.RiskLevel = rep.RiskLevel
	a.Issues = rep.SecurityIssues
	if a.Issues == nil {
		a.Issues = []string{}
	}
	a.Image = &domain.ImageDetails{
		FileName:          meta.Name,
		MimeType:          meta.MimeType,
		FileSize:          meta.Size,
		IsQRCode:          rep.IsQRCode,
		QRContent:         rep.QRContent,
		SuspiciousText:    rep.SuspiciousText,
		IsManipulated:     rep.IsManipulated,
		ManipulationScore: a.RiskScore,
		Explanation:       rep.Explanation,
	}
	return a
}

// Fallback is the fixed low-confidence synthetic result used when the
// service call fails outright: score in [30,50), Medium, one generic
// issue, local source.
func (it *Interpreter) Fallback(meta FileMeta) domain.RiskAssessment {
	it.mu.Lock()
	score := fallbackScoreBase + it.rng.Intn(fallbackScoreSpread)
	it.mu.Unlock()

	rep := Report{
		RiskLevel:      domain.RiskMedium,
		RiskScore:      score,
		SuspiciousText: "Unable to process image",
		SecurityIssues: []string{fallbackIssue},
		Explanation:    fallbackExplanation,
	}
	return FromReport(meta, rep, domain.SourceLocalHeuristic)
}
