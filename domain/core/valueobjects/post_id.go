package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// PostID is a value object wrapping a post's unique identifier.
// Identifiers are UUIDs; the legacy collection-length scheme is not
// collision-safe across deletions and is not supported.
type PostID struct {
	value string
}

// NewPostID generates a new random PostID.
func NewPostID() PostID {
	return PostID{value: uuid.New().String()}
}

// ParsePostID builds a PostID from an existing string.
func ParsePostID(id string) (PostID, error) {
	if id == "" {
		return PostID{}, errors.New("post ID cannot be empty")
	}
	return PostID{value: id}, nil
}

func (id PostID) String() string {
	return id.value
}

func (id PostID) Equals(other PostID) bool {
	return id.value == other.value
}

func (id PostID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler.
func (id PostID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *PostID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("post ID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
