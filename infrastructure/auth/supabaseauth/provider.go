// Package supabaseauth delegates identity verification to a hosted
// Supabase project. The provider's user object is mapped into the local
// identity shape; the provider's protocol is otherwise opaque here.
package supabaseauth

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	gotruetypes "github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"inkwell/domain/core/entities"
	apperrors "inkwell/pkg/errors"
)

// Provider implements ports.IdentityProvider over supabase-go.
type Provider struct {
	client *supabase.Client
	logger *zap.Logger

	mu          sync.Mutex
	accessToken string // last session token, used for best-effort logout
}

// NewProvider creates a provider for the given project URL and anon key.
func NewProvider(url, key string, logger *zap.Logger) (*Provider, error) {
	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, apperrors.NewExternalError("supabase", err)
	}
	return &Provider{client: client, logger: logger}, nil
}

// SignIn verifies credentials with Supabase.
func (p *Provider) SignIn(ctx context.Context, email, password string) (entities.User, error) {
	session, err := p.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return entities.User{}, apperrors.NewInvalidCredentialsError(err.Error())
	}

	user := mapUser(session.User)
	if user.IsZero() {
		return entities.User{}, apperrors.NewExternalError("supabase", errNoUser)
	}

	p.mu.Lock()
	p.accessToken = session.AccessToken
	p.mu.Unlock()

	return user, nil
}

// SignUp registers the identity with Supabase, carrying the display name
// in the user metadata. Duplicate detection is the provider's concern;
// its error message is surfaced as-is.
func (p *Provider) SignUp(ctx context.Context, email, password, name string) (entities.User, error) {
	resp, err := p.client.Auth.Signup(gotruetypes.SignupRequest{
		Email:    email,
		Password: password,
		Data:     map[string]interface{}{"name": name},
	})
	if err != nil {
		return entities.User{}, apperrors.NewExternalError("supabase", err)
	}

	user := mapUser(resp.User)
	if user.IsZero() {
		return entities.User{}, apperrors.NewExternalError("supabase", errNoUser)
	}

	p.mu.Lock()
	p.accessToken = resp.AccessToken
	p.mu.Unlock()

	return user, nil
}

// SignOut invalidates the remote session. Callers treat failures as
// best-effort; the error is returned for logging only.
func (p *Provider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	token := p.accessToken
	p.accessToken = ""
	p.mu.Unlock()

	if token == "" {
		return nil
	}
	if err := p.client.Auth.WithToken(token).Logout(); err != nil {
		return apperrors.NewExternalError("supabase", err)
	}
	return nil
}

var errNoUser = errors.New("provider returned no user")

// mapUser converts the provider's user object into the local identity
// shape: id, email, and the metadata display name.
func mapUser(u gotruetypes.User) entities.User {
	if u.ID == uuid.Nil {
		return entities.User{}
	}
	user := entities.User{
		ID:    u.ID.String(),
		Email: u.Email,
	}
	if name, ok := u.UserMetadata["name"].(string); ok {
		user.Name = name
	}
	if avatar, ok := u.UserMetadata["avatar_url"].(string); ok {
		user.Avatar = avatar
	}
	return user
}
