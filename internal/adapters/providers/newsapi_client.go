package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/scamshield/scamshield/internal/domain"
)

const newsAPIBaseURL = "https://newsapi.org"

// NewsAPIClient implements ports.NewsSource against the NewsAPI
// everything endpoint, querying for scam and fraud coverage.
type NewsAPIClient struct {
	apiKey string
	cfg    clientConfig
}

// NewNewsAPIClient creates a NewsAPI client with the given API key.
func NewNewsAPIClient(apiKey string, opts ...Option) *NewsAPIClient {
	return &NewsAPIClient{apiKey: apiKey, cfg: newClientConfig(newsAPIBaseURL, opts...)}
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// LatestArticles fetches up to limit recent scam/fraud articles.
func (c *NewsAPIClient) LatestArticles(ctx context.Context, limit int) ([]domain.NewsArticle, error) {
	q := url.Values{}
	q.Set("q", "scam OR fraud OR phishing OR cybersecurity")
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.baseURL+"/v2/everything?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi: unexpected status %d", resp.StatusCode)
	}

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("newsapi: decode response: %w", err)
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("newsapi: api error: %s", body.Message)
	}

	articles := make([]domain.NewsArticle, 0, len(body.Articles))
	for _, a := range body.Articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		articles = append(articles, domain.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			SourceName:  a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
