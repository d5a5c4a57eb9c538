package jsontext

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Bare object",
			content:  `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "Fenced block with language tag",
			content:  "Sure, here you go:\n```json\n{\"a\": 1}\n```\nLet me know if you need more.",
			expected: `{"a": 1}`,
		},
		{
			name:     "Fenced block without language tag",
			content:  "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "Object surrounded by prose",
			content:  `The result is {"a": 1} as requested.`,
			expected: `{"a": 1}`,
		},
		{
			name:     "Trailing comma stripped",
			content:  `{"a": 1, "b": [2, 3,],}`,
			expected: `{"a": 1, "b": [2, 3]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractObject(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.True(t, json.Valid([]byte(got)))
		})
	}
}

func TestExtractObject_NoJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Plain prose", "I was unable to produce a result."},
		{"Empty", ""},
		{"Unbalanced braces", "} nothing here {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractObject(tt.content)
			assert.ErrorIs(t, err, ErrNoJSON)
		})
	}
}
