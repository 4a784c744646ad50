package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"https url", "https://example.com/a.mp3", true},
		{"http url", "http://example.com", true},
		{"url with query", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"empty", "", false},
		{"plain text", "not-a-url", false},
		{"missing scheme", "example.com/a.mp3", false},
		{"scheme only", "https://", false},
		{"whitespace", "   ", false},
		{"spaces inside", "https://example.com/a file.mp3", false},
		{"relative path", "/videos/a.mp3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsURL(tt.raw), "IsURL(%q)", tt.raw)
		})
	}
}
