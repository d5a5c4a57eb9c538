package domain

import "time"

// NewsArticle is a scam/fraud news item shown on the dashboard feed.
type NewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url,omitempty"`
	SourceName  string    `json:"source_name"`
	PublishedAt time.Time `json:"published_at"`
}

// FallbackArticles is the canned feed served when no news credential is
// configured or the news provider is unavailable. The API response
// discloses whichever source was used.
func FallbackArticles() []NewsArticle {
	published := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	return []NewsArticle{
		{
			Title:       "Toll-fee smishing texts surge across multiple states",
			Description: "Authorities warn of a wave of fake unpaid-toll text messages directing victims to payment pages that harvest card details.",
			URL:         "https://example.org/news/toll-smishing-wave",
			SourceName:  "ScamShield Archive",
			PublishedAt: published,
		},
		{
			Title:       "QR code stickers on parking meters redirect to phishing sites",
			Description: "Scammers are pasting fraudulent QR codes over legitimate ones, sending drivers to lookalike payment portals.",
			URL:         "https://example.org/news/parking-qr-phishing",
			SourceName:  "ScamShield Archive",
			PublishedAt: published.Add(-24 * time.Hour),
		},
		{
			Title:       "Tech-support cold calls impersonate major software vendors",
			Description: "Callers claim a computer is infected and request remote access plus gift-card payment for bogus repairs.",
			URL:         "https://example.org/news/tech-support-cold-calls",
			SourceName:  "ScamShield Archive",
			PublishedAt: published.Add(-48 * time.Hour),
		},
		{
			Title:       "Delivery-notification scams spike ahead of holidays",
			Description: "Fake courier messages ask recipients to reschedule a delivery through links that steal personal information.",
			URL:         "https://example.org/news/delivery-scam-spike",
			SourceName:  "ScamShield Archive",
			PublishedAt: published.Add(-72 * time.Hour),
		},
		{
			Title:       "Prize and lottery fraud keeps topping consumer complaints",
			Description: "Victims are told they won a prize but must pay fees or share bank details to claim it.",
			URL:         "https://example.org/news/prize-fraud-complaints",
			SourceName:  "ScamShield Archive",
			PublishedAt: published.Add(-96 * time.Hour),
		},
	}
}
