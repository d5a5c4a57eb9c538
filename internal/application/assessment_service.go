// Package application orchestrates the analyzers: it picks the
// external or local path per request, applies the fallback rule, and
// exposes one method per assessment type. All scoring logic lives in
// the domain layer; this layer only routes and logs.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/scamshield/scamshield/internal/domain/image"
	"github.com/scamshield/scamshield/internal/domain/message"
	"github.com/scamshield/scamshield/internal/domain/phone"
	"github.com/scamshield/scamshield/internal/domain/urlscan"
	"github.com/scamshield/scamshield/internal/ports"
)

// newsFeedLimit caps how many articles a news fetch requests.
const newsFeedLimit = 10

// Providers bundles the optional external services. A nil field means
// that analyzer runs its local path unconditionally.
type Providers struct {
	Phone ports.PhoneValidator
	URL   ports.URLScanner
	Text  ports.TextAnalyzer
	Image ports.ImageAnalyzer
	News  ports.NewsSource
}

// ServiceConfig carries the orchestration knobs.
type ServiceConfig struct {
	// ForceLocal disables every external call even when a provider is
	// configured. Useful for demos and offline operation.
	ForceLocal bool

	// Seed drives the synthetic phone lookups and image fallback
	// scores. Fixed seeds make local results reproducible.
	Seed int64
}

// AssessmentService is the application facade over the four analyzers
// and the news feed.
//
// Fallback guarantee: an external provider error never reaches the
// caller of an Assess method. The request is rescored locally, the
// error is logged, and the result's Source field discloses which path
// produced it. Only invalid input is returned as an error.
type AssessmentService struct {
	logger    *slog.Logger
	providers Providers
	cfg       ServiceConfig

	phoneScorer *phone.Scorer
	interpreter *image.Interpreter
}

// NewAssessmentService creates the service with dependency injection.
func NewAssessmentService(logger *slog.Logger, providers Providers, cfg ServiceConfig) *AssessmentService {
	return &AssessmentService{
		logger:      logger,
		providers:   providers,
		cfg:         cfg,
		phoneScorer: phone.NewScorer(cfg.Seed),
		interpreter: image.NewInterpreter(cfg.Seed),
	}
}

func (s *AssessmentService) external() bool {
	return !s.cfg.ForceLocal
}

// AssessPhone checks a phone number. External path: validation API
// lookup feeding the shared scorer. Local path: seeded synthetic
// lookup data feeding the same scorer.
func (s *AssessmentService) AssessPhone(ctx context.Context, number string) (domain.RiskAssessment, error) {
	if err := phone.ValidateNumber(number); err != nil {
		return domain.RiskAssessment{}, err
	}

	if s.external() && s.providers.Phone != nil {
		lookup, err := s.providers.Phone.Lookup(ctx, number)
		if err == nil {
			a := phone.Score(number, lookup, domain.SourceExternalService)
			s.logAssessed(ctx, a)
			return a, nil
		}
		s.logFallback(ctx, domain.KindPhone, err)
	}

	a, err := s.phoneScorer.Assess(number)
	if err != nil {
		return domain.RiskAssessment{}, err
	}
	s.logAssessed(ctx, a)
	return a, nil
}

// AssessMessage analyzes message text. External path: AI analysis
// normalized into the unified shape; any call or parse failure falls
// back entirely to the local detectors, keeping no partial external data.
func (s *AssessmentService) AssessMessage(ctx context.Context, text string) (domain.RiskAssessment, error) {
	if err := message.ValidateMessage(text); err != nil {
		return domain.RiskAssessment{}, err
	}

	if s.external() && s.providers.Text != nil {
		reply, err := s.providers.Text.AnalyzeMessage(ctx, text)
		if err == nil {
			a, perr := message.FromModelReply(text, reply)
			if perr == nil {
				s.logAssessed(ctx, a)
				return a, nil
			}
			err = perr
		}
		s.logFallback(ctx, domain.KindMessage, err)
	}

	a := message.Assess(text)
	s.logAssessed(ctx, a)
	return a, nil
}

// AssessURL scans a URL for threats. External path: reputation-scan
// report normalized into the unified shape. An empty report also falls
// back, so a never-before-seen URL still gets a local verdict.
func (s *AssessmentService) AssessURL(ctx context.Context, raw string) (domain.RiskAssessment, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.RiskAssessment{}, fmt.Errorf("%w: please enter a URL", domain.ErrInvalidInput)
	}
	formatted := urlscan.NormalizeURL(raw)

	if s.external() && s.providers.URL != nil {
		rep, err := s.providers.URL.Scan(ctx, formatted)
		if err == nil {
			a, perr := urlscan.FromReport(formatted, rep)
			if perr == nil {
				s.logAssessed(ctx, a)
				return a, nil
			}
			err = perr
		}
		s.logFallback(ctx, domain.KindURL, err)
	}

	a := urlscan.Assess(raw)
	s.logAssessed(ctx, a)
	return a, nil
}

// AssessImage analyzes an uploaded image. There is no local analysis
// path: when the AI call fails the result is the interpreter's
// low-confidence synthetic fallback. Malformed replies go through the
// text-recovery pass rather than the fallback.
func (s *AssessmentService) AssessImage(ctx context.Context, meta image.FileMeta, data []byte) (domain.RiskAssessment, error) {
	if err := image.ValidateFile(meta); err != nil {
		return domain.RiskAssessment{}, err
	}

	if s.external() && s.providers.Image != nil {
		reply, err := s.providers.Image.AnalyzeImage(ctx, meta, data)
		if err == nil {
			rep := s.interpreter.ParseReply(reply)
			a := image.FromReport(meta, rep, domain.SourceExternalService)
			s.logAssessed(ctx, a)
			return a, nil
		}
		s.logFallback(ctx, domain.KindImage, err)
	}

	a := s.interpreter.Fallback(meta)
	s.logAssessed(ctx, a)
	return a, nil
}

// News returns the scam-awareness feed, falling back to the canned
// archive when no provider is configured or the fetch fails. The bool
// reports whether live articles were returned.
func (s *AssessmentService) News(ctx context.Context) ([]domain.NewsArticle, bool) {
	if s.external() && s.providers.News != nil {
		articles, err := s.providers.News.LatestArticles(ctx, newsFeedLimit)
		if err == nil && len(articles) > 0 {
			return articles, true
		}
		if err != nil {
			s.logger.WarnContext(ctx, "news fetch failed, serving archive", "error", err)
		}
	}
	return domain.FallbackArticles(), false
}

func (s *AssessmentService) logAssessed(ctx context.Context, a domain.RiskAssessment) {
	s.logger.InfoContext(ctx, "assessment completed",
		"kind", a.Kind,
		"risk_score", a.RiskScore,
		"risk_level", a.RiskLevel,
		"source", a.Source,
		"issues", len(a.Issues),
	)
}

func (s *AssessmentService) logFallback(ctx context.Context, kind domain.Kind, err error) {
	s.logger.WarnContext(ctx, "external provider failed, using local analysis",
		"kind", kind,
		"error", err,
	)
}
