package ports

import (
	"context"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/scamshield/scamshield/internal/domain/image"
	"github.com/scamshield/scamshield/internal/domain/phone"
	"github.com/scamshield/scamshield/internal/domain/urlscan"
)

// PhoneValidator defines the contract for external phone-number lookup.
// Any error from Lookup makes the application layer fall back to the
// local heuristic path with synthetic lookup data.
type PhoneValidator interface {
	// Lookup resolves carrier, country and line-type data for a number
	// in canonical form.
	Lookup(ctx context.Context, number string) (phone.LookupData, error)
}

// URLScanner defines the contract for external URL-reputation scanning.
type URLScanner interface {
	// Scan submits the URL for analysis and returns the aggregated
	// engine report once the scan completes.
	Scan(ctx context.Context, formattedURL string) (urlscan.ScanReport, error)
}

// TextAnalyzer defines the contract for AI text-scam analysis. The raw
// model reply is returned untouched; reply normalization lives in the
// domain layer so every provider shares the same parsing rules.
type TextAnalyzer interface {
	AnalyzeMessage(ctx context.Context, text string) (reply string, err error)
}

// ImageAnalyzer defines the contract for multimodal AI image analysis.
// data is the raw upload; meta carries its name, MIME type and size.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, meta image.FileMeta, data []byte) (reply string, err error)
}

// NewsSource defines the contract for fetching scam-awareness articles.
type NewsSource interface {
	LatestArticles(ctx context.Context, limit int) ([]domain.NewsArticle, error)
}
