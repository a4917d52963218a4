// Package localauth is the mock-mode identity provider. Known identities
// live in a directory document in durable storage; credential checks are
// delegated to a pluggable verifier; registration appends to the
// directory. A fixed artificial delay stands in for network latency.
package localauth

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"inkwell/application/ports"
	"inkwell/domain/core/entities"
	"inkwell/domain/core/valueobjects"
	"inkwell/pkg/auth"
	apperrors "inkwell/pkg/errors"
)

// Account pairs an identity with its stored credential form. The secret
// is empty for seeded identities under the shared-constant scheme.
type Account struct {
	User   entities.User `json:"user"`
	Secret string        `json:"secret,omitempty"`
}

// SeedAccounts wraps seed identities into directory accounts with no
// stored secret.
func SeedAccounts(users []entities.User) []Account {
	accounts := make([]Account, 0, len(users))
	for _, u := range users {
		accounts = append(accounts, Account{User: u})
	}
	return accounts
}

// Provider verifies identities against the local directory.
type Provider struct {
	mu       sync.Mutex
	storage  ports.Storage
	verifier auth.CredentialVerifier
	delay    time.Duration
	logger   *zap.Logger
	accounts []Account
	seeded   bool // directory came from seed data, not yet persisted
}

// NewProvider loads the directory from storage, seeding it with the given
// identities when the document is absent. The seeded directory is not
// persisted until the first registration.
func NewProvider(
	ctx context.Context,
	storage ports.Storage,
	verifier auth.CredentialVerifier,
	seed []entities.User,
	delay time.Duration,
	logger *zap.Logger,
) (*Provider, error) {
	p := &Provider{
		storage:  storage,
		verifier: verifier,
		delay:    delay,
		logger:   logger,
	}

	raw, err := storage.Get(ctx, ports.KeyUserDirectory)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		p.accounts = SeedAccounts(seed)
		p.seeded = true
		return p, nil
	}
	if err := json.Unmarshal(raw, &p.accounts); err != nil {
		return nil, apperrors.NewStorageError("load user directory", err)
	}
	return p, nil
}

// SignIn looks the identity up by email and checks the presented password.
func (p *Provider) SignIn(ctx context.Context, email, password string) (entities.User, error) {
	if err := p.wait(ctx); err != nil {
		return entities.User{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	normalized := valueobjects.NormalizeEmail(email)
	for _, account := range p.accounts {
		if account.User.Email != normalized {
			continue
		}
		if !p.verifier.Verify(account.Secret, password) {
			break
		}
		return account.User, nil
	}
	return entities.User{}, apperrors.NewInvalidCredentialsError("Invalid email or password")
}

// SignUp registers a new identity. The duplicate check is a linear scan
// of the directory and is only authoritative for this client.
func (p *Provider) SignUp(ctx context.Context, email, password, name string) (entities.User, error) {
	if err := p.wait(ctx); err != nil {
		return entities.User{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	normalized := valueobjects.NormalizeEmail(email)
	for _, account := range p.accounts {
		if account.User.Email == normalized {
			return entities.User{}, apperrors.NewDuplicateEmailError("User already exists with this email")
		}
	}

	user, err := entities.NewUser(email, name, "")
	if err != nil {
		return entities.User{}, err
	}
	secret, err := p.verifier.Hash(password)
	if err != nil {
		return entities.User{}, apperrors.NewInternalError("hash credential").WithCause(err)
	}

	p.accounts = append(p.accounts, Account{User: user, Secret: secret})
	if err := p.persistLocked(ctx); err != nil {
		p.accounts = p.accounts[:len(p.accounts)-1]
		return entities.User{}, err
	}
	p.seeded = false

	p.logger.Info("identity registered", zap.String("userID", user.ID))
	return user, nil
}

// SignOut is a no-op locally; there is no provider-side session.
func (p *Provider) SignOut(ctx context.Context) error {
	return nil
}

func (p *Provider) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(p.accounts)
	if err != nil {
		return apperrors.NewStorageError("encode user directory", err)
	}
	return p.storage.Put(ctx, ports.KeyUserDirectory, raw)
}

// wait simulates provider latency, honoring context cancellation.
func (p *Provider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
