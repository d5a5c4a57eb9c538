package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumverifyClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/validate", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "+12128675309", r.URL.Query().Get("number"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"valid": true,
			"number": "12128675309",
			"local_format": "2128675309",
			"international_format": "+12128675309",
			"country_prefix": "+1",
			"country_code": "US",
			"country_name": "United States of America",
			"location": "New York",
			"carrier": "Verizon",
			"line_type": "mobile"
		}`))
	}))
	defer srv.Close()

	client := NewNumverifyClient("test-key", WithBaseURL(srv.URL))

	lookup, err := client.Lookup(context.Background(), "+1 212 867 5309")
	require.NoError(t, err)

	assert.True(t, lookup.Valid)
	assert.Equal(t, "+12128675309", lookup.InternationalFormat)
	assert.Equal(t, "United States of America", lookup.CountryName)
	assert.Equal(t, "US", lookup.CountryCode)
	assert.Equal(t, "mobile", lookup.LineType)
	assert.Equal(t, "Verizon", lookup.Carrier)
}

func TestNumverifyClient_DefaultBaseURLUsesTLS(t *testing.T) {
	client := NewNumverifyClient("test-key")

	assert.Equal(t, "https://apilayer.net", client.cfg.baseURL)
}

func TestNumverifyClient_Lookup_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": {"code": 101, "info": "invalid access key"}}`))
	}))
	defer srv.Close()

	client := NewNumverifyClient("bad-key", WithBaseURL(srv.URL))

	_, err := client.Lookup(context.Background(), "+12128675309")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid access key")
}

func TestNumverifyClient_Lookup_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewNumverifyClient("test-key", WithBaseURL(srv.URL))

	_, err := client.Lookup(context.Background(), "+12128675309")

	assert.Error(t, err)
}

func TestNumverifyClient_Lookup_InvalidNumberIsData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"valid": false, "number": "123"}`))
	}))
	defer srv.Close()

	client := NewNumverifyClient("test-key", WithBaseURL(srv.URL))

	lookup, err := client.Lookup(context.Background(), "+123")
	require.NoError(t, err)
	assert.False(t, lookup.Valid)
}
