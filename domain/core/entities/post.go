package entities

import (
	"strings"
	"time"

	"inkwell/domain/core/valueobjects"
	apperrors "inkwell/pkg/errors"
)

// Post is a single authored piece of content with a Markdown body.
//
// Author is a denormalized snapshot of the identity that created the post;
// later changes to that identity never propagate back into existing posts.
// CreatedAt is set once; UpdatedAt is refreshed on every mutation. Both are
// serialized as RFC 3339 strings.
type Post struct {
	ID         valueobjects.PostID `json:"id"`
	Title      string              `json:"title"`
	Excerpt    string              `json:"excerpt"`
	Body       string              `json:"content"`
	CoverImage string              `json:"coverImage,omitempty"`
	Author     User                `json:"author"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// NewPost creates a post authored by the given identity. Both timestamps
// are set to the same instant.
func NewPost(title, excerpt, body, coverImage string, author User) (Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Post{}, apperrors.NewValidationError("title cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return Post{}, apperrors.NewValidationError("content cannot be empty")
	}
	if author.IsZero() {
		return Post{}, apperrors.NewValidationError("author identity is required")
	}

	now := time.Now().UTC()
	return Post{
		ID:         valueobjects.NewPostID(),
		Title:      title,
		Excerpt:    strings.TrimSpace(excerpt),
		Body:       body,
		CoverImage: coverImage,
		Author:     author,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Touch refreshes the updated timestamp.
func (p *Post) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

// AuthoredBy reports whether the post's author snapshot matches the given
// identity id.
func (p Post) AuthoredBy(userID string) bool {
	return p.Author.ID == userID
}
