package entities

import (
	"github.com/google/uuid"

	"inkwell/domain/core/valueobjects"
	apperrors "inkwell/pkg/errors"
)

// User is an authenticated or registerable identity. It is serialized
// verbatim to durable storage and embedded as an author snapshot inside
// posts, so the fields are exported with stable JSON names.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// NewUser creates an identity with a fresh UUID. The email is normalized
// and validated; name and avatar are optional.
func NewUser(email, name, avatar string) (User, error) {
	addr, err := valueobjects.NewEmail(email)
	if err != nil {
		return User{}, apperrors.NewValidationError(err.Error())
	}
	return User{
		ID:     uuid.New().String(),
		Email:  addr.String(),
		Name:   name,
		Avatar: avatar,
	}, nil
}

// IsZero reports whether the identity is unset.
func (u User) IsZero() bool {
	return u.ID == ""
}
