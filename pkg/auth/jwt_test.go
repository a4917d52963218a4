package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/domain/core/entities"
	"inkwell/pkg/auth"
)

var tokenUser = entities.User{
	ID:    "user-123",
	Email: "johndoe@example.com",
	Name:  "John Doe",
}

func TestIssueValidateRoundTrip(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("test-secret", "inkwell", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(tokenUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "johndoe@example.com", claims.Email)
	assert.Equal(t, "John Doe", claims.Name)
}

func TestValidateStripsBearerPrefix(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("test-secret", "inkwell", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(tokenUser)
	require.NoError(t, err)

	claims, err := issuer.Validate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestValidateEmptyToken(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("test-secret", "inkwell", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Validate("")
	assert.ErrorIs(t, err, auth.ErrMissingToken)

	_, err = issuer.Validate("Bearer ")
	assert.ErrorIs(t, err, auth.ErrMissingToken)
}

func TestValidateExpiredToken(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("test-secret", "inkwell", time.Nanosecond)
	require.NoError(t, err)

	token, err := issuer.Issue(tokenUser)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("secret-one", "inkwell", time.Hour)
	require.NoError(t, err)
	other, err := auth.NewTokenIssuer("secret-two", "inkwell", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(tokenUser)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("test-secret", "someone-else", time.Hour)
	require.NoError(t, err)
	verifier, err := auth.NewTokenIssuer("test-secret", "inkwell", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(tokenUser)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("test-secret", "inkwell", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Validate("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	_, err := auth.NewTokenIssuer("", "inkwell", time.Hour)
	assert.Error(t, err)
}
