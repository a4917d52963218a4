package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inkwell/pkg/sanitize"
)

func TestTextStripsMarkup(t *testing.T) {
	s := sanitize.NewPostSanitizer()

	assert.Equal(t, "Hello World", s.Text("Hello <b>World</b>"))
	assert.NotContains(t, s.Text(`<script>alert("x")</script>Title`), "script")
	assert.Equal(t, "Plain title", s.Text("Plain title"))
}

func TestTextTrimsWhitespace(t *testing.T) {
	s := sanitize.NewPostSanitizer()
	assert.Equal(t, "Trimmed", s.Text("   Trimmed \n"))
}

func TestTextIsIdempotent(t *testing.T) {
	s := sanitize.NewPostSanitizer()

	once := s.Text("A <i>styled</i> title")
	assert.Equal(t, once, s.Text(once))
}

func TestImageURL(t *testing.T) {
	s := sanitize.NewPostSanitizer()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"https passes", "https://images.pexels.com/photo.jpg", "https://images.pexels.com/photo.jpg"},
		{"http passes", "http://example.com/a.png", "http://example.com/a.png"},
		{"javascript scheme rejected", "javascript:alert(1)", ""},
		{"data scheme rejected", "data:text/html;base64,xxxx", ""},
		{"relative path rejected", "/images/a.png", ""},
		{"schemeless rejected", "example.com/a.png", ""},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.ImageURL(tc.raw))
		})
	}
}
