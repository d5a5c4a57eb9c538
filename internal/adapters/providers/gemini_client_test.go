package providers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scamshield/scamshield/internal/domain/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(text string) string {
	reply := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	raw, _ := json.Marshal(reply)
	return string(raw)
}

func TestGeminiClient_AnalyzeMessage(t *testing.T) {
	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Write([]byte(geminiReply(`{"riskLevel": "High", "riskScore": 90}`)))
	}))
	defer srv.Close()

	client := NewGeminiClient("test-key", WithBaseURL(srv.URL))

	reply, err := client.AnalyzeMessage(context.Background(), "URGENT: verify your account")
	require.NoError(t, err)

	assert.Contains(t, reply, `"riskScore": 90`)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "URGENT: verify your account")
	assert.True(t, strings.Contains(gotBody.Contents[0].Parts[0].Text, "riskLevel"), "prompt should pin the reply schema")
}

func TestGeminiClient_AnalyzeImage(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4e, 0x47}

	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MimeType string `json:"mime_type"`
					Data     string `json:"data"`
				} `json:"inline_data"`
			} `json:"parts"`
		} `json:"contents"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(geminiReply(`{"isQRCode": true, "riskLevel": "Medium", "riskScore": 45}`)))
	}))
	defer srv.Close()

	client := NewGeminiClient("test-key", WithBaseURL(srv.URL))
	meta := image.FileMeta{Name: "qr.png", MimeType: "image/png", Size: int64(len(data))}

	reply, err := client.AnalyzeImage(context.Background(), meta, data)
	require.NoError(t, err)

	assert.Contains(t, reply, `"isQRCode": true`)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 2)
	inline := gotBody.Contents[0].Parts[1].InlineData
	require.NotNil(t, inline)
	assert.Equal(t, "image/png", inline.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), inline.Data)
}

func TestGeminiClient_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("test-key", WithBaseURL(srv.URL))

	_, err := client.AnalyzeMessage(context.Background(), "some message")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestGeminiClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewGeminiClient("bad-key", WithBaseURL(srv.URL))

	_, err := client.AnalyzeMessage(context.Background(), "some message")

	assert.Error(t, err)
}
