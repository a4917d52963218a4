// Package ports defines the interfaces the stores depend on. Concrete
// implementations live under infrastructure/ and are wired together by the
// composition root in infrastructure/di.
package ports

import (
	"context"

	"inkwell/domain/core/entities"
)

// Durable-storage document keys. Each key holds one whole JSON document;
// writes are whole-document and synchronous.
const (
	KeySessionUser   = "blogUser"  // serialized identity of the signed-in user
	KeyPosts         = "blogs"     // serialized array of posts
	KeyUserDirectory = "blogUsers" // serialized registered-identity directory
)

// Storage is a durable key-value document store. Get returns (nil, nil)
// when the key is absent.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// IdentityProvider verifies and establishes identities. The local
// implementation checks credentials against the registered-identity
// directory; the hosted implementation delegates to Supabase.
type IdentityProvider interface {
	// SignIn verifies credentials and returns the matching identity.
	SignIn(ctx context.Context, email, password string) (entities.User, error)
	// SignUp registers a new identity and returns it as signed in.
	SignUp(ctx context.Context, email, password, name string) (entities.User, error)
	// SignOut invalidates any provider-side session. Best effort.
	SignOut(ctx context.Context) error
}

// IdentitySource exposes the currently signed-in identity, if any.
// The session store implements this for the content store.
type IdentitySource interface {
	Current() *entities.User
}
