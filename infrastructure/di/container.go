// Package di is the composition root. It constructs every component
// explicitly and hands the stores to their consumers by reference; there
// is no ambient lookup anywhere else in the program.
package di

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"inkwell/application/ports"
	"inkwell/application/store"
	"inkwell/infrastructure/config"
	"inkwell/pkg/auth"
	"inkwell/pkg/observability"
	"inkwell/pkg/sanitize"
)

// Container holds all wired application dependencies.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Storage  ports.Storage
	Provider ports.IdentityProvider
	Sessions *store.SessionStore
	Content  *store.ContentStore
	Tokens   *auth.TokenIssuer
	Metrics  *observability.Metrics
	Registry *prometheus.Registry

	closers []func() error
}

// NewContainer wires the full dependency graph from configuration.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	logger, err := provideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	c.Logger = logger

	if cfg.EnableMetrics {
		c.Registry = prometheus.NewRegistry()
		c.Metrics = observability.NewMetrics(c.Registry)
	}

	storage, closeStorage, err := provideStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build storage: %w", err)
	}
	c.Storage = storage
	if closeStorage != nil {
		c.closers = append(c.closers, closeStorage)
	}

	provider, err := provideIdentityProvider(ctx, cfg, storage, logger)
	if err != nil {
		return nil, fmt.Errorf("build identity provider: %w", err)
	}
	c.Provider = provider

	sessions, err := store.NewSessionStore(ctx, storage, provider, logger, c.Metrics)
	if err != nil {
		return nil, fmt.Errorf("build session store: %w", err)
	}
	c.Sessions = sessions

	content, err := store.NewContentStore(ctx, storage, sessions, sanitize.NewPostSanitizer(), logger, c.Metrics)
	if err != nil {
		return nil, fmt.Errorf("build content store: %w", err)
	}
	c.Content = content

	tokens, err := provideTokenIssuer(cfg)
	if err != nil {
		return nil, fmt.Errorf("build token issuer: %w", err)
	}
	c.Tokens = tokens

	return c, nil
}

// Close releases infrastructure resources in reverse construction order.
func (c *Container) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	return firstErr
}
