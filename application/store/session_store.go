// Package store holds the two state stores of the application: the
// session store, which owns the current identity, and the content store,
// which owns the post collection. Both are constructed explicitly by the
// composition root and injected by reference; neither is a global.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"inkwell/application/ports"
	"inkwell/domain/core/entities"
	apperrors "inkwell/pkg/errors"
	"inkwell/pkg/observability"
)

// SessionStore owns the single current identity and the transitions that
// establish or clear it. Exactly one identity is current at a time;
// authenticated is always derived as "current identity is non-nil".
//
// Failed sign-in and sign-up both record the failure message into the
// store's visible error state and return the error: callers must assume
// the operation mutates state and fails.
type SessionStore struct {
	mu       sync.RWMutex
	storage  ports.Storage
	provider ports.IdentityProvider
	logger   *zap.Logger
	metrics  *observability.Metrics

	current  *entities.User
	inFlight bool
	lastErr  string
}

// NewSessionStore constructs the store and restores the persisted session
// from durable storage. A present, parseable identity document becomes
// the initial current identity; no further validation is performed.
func NewSessionStore(
	ctx context.Context,
	storage ports.Storage,
	provider ports.IdentityProvider,
	logger *zap.Logger,
	metrics *observability.Metrics,
) (*SessionStore, error) {
	s := &SessionStore{
		storage:  storage,
		provider: provider,
		logger:   logger,
		metrics:  metrics,
	}

	raw, err := storage.Get(ctx, ports.KeySessionUser)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var user entities.User
		if err := json.Unmarshal(raw, &user); err != nil {
			logger.Warn("stored session document is unreadable, starting signed out",
				zap.Error(err))
		} else {
			s.current = &user
			logger.Info("session restored", zap.String("userID", user.ID))
		}
	}
	return s, nil
}

// SignIn verifies credentials through the provider and establishes the
// returned identity as current, persisting it to durable storage.
func (s *SessionStore) SignIn(ctx context.Context, email, password string) (entities.User, error) {
	s.begin()

	user, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		s.fail(err)
		s.metrics.RecordSignIn(false)
		return entities.User{}, err
	}
	if err := s.persistIdentity(ctx, user); err != nil {
		s.fail(err)
		s.metrics.RecordSignIn(false)
		return entities.User{}, err
	}

	s.establish(user)
	s.metrics.RecordSignIn(true)
	s.logger.Info("signed in", zap.String("userID", user.ID))
	return user, nil
}

// SignUp registers a new identity through the provider and behaves like a
// successful sign-in.
func (s *SessionStore) SignUp(ctx context.Context, email, password, name string) (entities.User, error) {
	s.begin()

	user, err := s.provider.SignUp(ctx, email, password, name)
	if err != nil {
		s.fail(err)
		return entities.User{}, err
	}
	if err := s.persistIdentity(ctx, user); err != nil {
		s.fail(err)
		return entities.User{}, err
	}

	s.establish(user)
	s.metrics.RecordRegistration()
	s.logger.Info("registered and signed in", zap.String("userID", user.ID))
	return user, nil
}

// SignOut clears the current identity from memory and durable storage.
// Remote invalidation is best effort: a provider failure is logged, never
// surfaced.
func (s *SessionStore) SignOut(ctx context.Context) error {
	if err := s.provider.SignOut(ctx); err != nil {
		s.logger.Warn("remote sign-out failed", zap.Error(err))
	}

	err := s.storage.Delete(ctx, ports.KeySessionUser)

	s.mu.Lock()
	s.current = nil
	s.lastErr = ""
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.logger.Info("signed out")
	return nil
}

// Current returns a copy of the signed-in identity, or nil.
func (s *SessionStore) Current() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// IsAuthenticated reports whether an identity is current.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// InFlight reports whether a sign-in or sign-up call is running.
func (s *SessionStore) InFlight() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight
}

// LastError returns the message of the most recent failed operation, or
// the empty string.
func (s *SessionStore) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *SessionStore) begin() {
	s.mu.Lock()
	s.inFlight = true
	s.lastErr = ""
	s.mu.Unlock()
}

// fail records the failure message and clears the in-flight flag. The
// current identity is left untouched.
func (s *SessionStore) fail(err error) {
	message := err.Error()
	if appErr := apperrors.GetAppError(err); appErr != nil {
		message = appErr.Message
	}

	s.mu.Lock()
	s.inFlight = false
	s.lastErr = message
	s.mu.Unlock()
}

func (s *SessionStore) establish(user entities.User) {
	s.mu.Lock()
	s.current = &user
	s.inFlight = false
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *SessionStore) persistIdentity(ctx context.Context, user entities.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return apperrors.NewStorageError("encode session", err)
	}
	start := time.Now()
	if err := s.storage.Put(ctx, ports.KeySessionUser, raw); err != nil {
		return err
	}
	s.metrics.RecordStorageWrite(time.Since(start))
	return nil
}
