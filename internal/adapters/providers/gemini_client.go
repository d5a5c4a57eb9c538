package providers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/scamshield/scamshield/internal/domain/image"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiModel   = "gemini-2.0-flash"

	// maxReplySize caps how much of a model reply is read; anything a
	// sane analysis produces fits well under it.
	maxReplySize = 1 << 20
)

// GeminiClient implements ports.TextAnalyzer and ports.ImageAnalyzer
// against the Gemini generateContent API. It returns the raw model
// reply text; reply parsing stays in the domain layer.
type GeminiClient struct {
	apiKey string
	cfg    clientConfig
}

// NewGeminiClient creates a Gemini client with the given API key.
func NewGeminiClient(apiKey string, opts ...Option) *GeminiClient {
	return &GeminiClient{apiKey: apiKey, cfg: newClientConfig(geminiBaseURL, opts...)}
}

const messagePrompt = `Analyze this message for scam indicators and respond with only a JSON object in this exact format:
{
  "riskLevel": "Low" | "Medium" | "High",
  "riskScore": <number 0-100>,
  "scamType": "<category such as Banking Scam, Delivery Scam, Prize Scam, Tax Scam, Tech Support Scam, or Not a scam>",
  "indicators": {
    "containsUrgency": <bool>,
    "containsFinancial": <bool>,
    "containsLinks": <bool>,
    "containsPersonalInfo": <bool>,
    "containsThreats": <bool>,
    "containsMisspellings": <bool>
  },
  "explanation": "<why this verdict>",
  "suggestedResponse": "<what the recipient should do>"
}

Message to analyze:
`

const imagePrompt = `Analyze this image for scam indicators. Check whether it contains a QR code and, if so, what the code encodes. Look for suspicious text, manipulated content and phishing bait. Respond with only a JSON object in this exact format:
{
  "isQRCode": <bool>,
  "riskLevel": "Low" | "Medium" | "High",
  "riskScore": <number 0-100>,
  "qrContent": "<decoded QR payload or empty>",
  "suspiciousText": "<suspicious text found in the image or empty>",
  "securityIssues": ["<issue>", ...],
  "isManipulated": <bool>,
  "explanation": "<why this verdict>"
}`

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeMessage asks the model for a structured scam analysis of text.
func (c *GeminiClient) AnalyzeMessage(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, []geminiPart{{Text: messagePrompt + text}})
}

// AnalyzeImage asks the model for a structured analysis of an uploaded
// image, passed inline as base64.
func (c *GeminiClient) AnalyzeImage(ctx context.Context, meta image.FileMeta, data []byte) (string, error) {
	parts := []geminiPart{
		{Text: imagePrompt},
		{InlineData: &geminiInlineData{
			MimeType: meta.MimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		}},
	}
	return c.generate(ctx, parts)
}

func (c *GeminiClient) generate(ctx context.Context, parts []geminiPart) (string, error) {
	payload, err := json.Marshal(geminiRequest{Contents: []geminiContent{{Parts: parts}}})
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.cfg.baseURL, geminiModel, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}

	var body geminiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReplySize)).Decode(&body); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	return body.Candidates[0].Content.Parts[0].Text, nil
}
