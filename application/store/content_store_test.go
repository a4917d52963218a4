package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inkwell/application/ports"
	"inkwell/application/store"
	"inkwell/domain/core/entities"
	"inkwell/infrastructure/persistence/memory"
	apperrors "inkwell/pkg/errors"
	"inkwell/pkg/sanitize"
)

// stubIdentity is a fixed identity source standing in for the session
// store.
type stubIdentity struct {
	user *entities.User
}

func (s *stubIdentity) Current() *entities.User {
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

var (
	alice = entities.User{ID: "user-alice", Email: "a@x.com", Name: "Alice"}
	bob   = entities.User{ID: "user-bob", Email: "b@x.com", Name: "Bob"}
)

// emptyStorage returns storage holding an explicitly empty collection so
// tests start without the sample seed.
func emptyStorage(t *testing.T) ports.Storage {
	t.Helper()
	storage := memory.NewStore()
	require.NoError(t, storage.Put(context.Background(), ports.KeyPosts, []byte("[]")))
	return storage
}

func newContentStore(t *testing.T, storage ports.Storage, identity ports.IdentitySource) *store.ContentStore {
	t.Helper()
	content, err := store.NewContentStore(
		context.Background(),
		storage,
		identity,
		sanitize.NewPostSanitizer(),
		zap.NewNop(),
		nil,
	)
	require.NoError(t, err)
	return content
}

func TestCreateRequiresAuthentication(t *testing.T) {
	content := newContentStore(t, emptyStorage(t), &stubIdentity{})

	_, err := content.Create(context.Background(), store.CreatePost{
		Title: "Nope",
		Body:  "body",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotAuthenticated(err))
	assert.Equal(t, 0, content.Len())
}

func TestCreateAssignsIdentifierAndTimestamps(t *testing.T) {
	content := newContentStore(t, emptyStorage(t), &stubIdentity{user: &alice})
	ctx := context.Background()

	post, err := content.Create(ctx, store.CreatePost{
		Title:   "First Post",
		Excerpt: "A short summary",
		Body:    "# Hello\n\nSome *markdown*.",
	})
	require.NoError(t, err)

	assert.False(t, post.ID.IsZero())
	assert.True(t, post.CreatedAt.Equal(post.UpdatedAt))
	assert.Equal(t, alice, post.Author)

	other, err := content.Create(ctx, store.CreatePost{Title: "Second", Body: "body"})
	require.NoError(t, err)
	assert.False(t, other.ID.Equals(post.ID))

	// Newest first.
	all := content.All(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Title)
	assert.Equal(t, "First Post", all[1].Title)
}

func TestAuthorSnapshotDoesNotTrackIdentityChanges(t *testing.T) {
	identity := &stubIdentity{user: &alice}
	content := newContentStore(t, emptyStorage(t), identity)
	ctx := context.Background()

	post, err := content.Create(ctx, store.CreatePost{Title: "Snapshot", Body: "body"})
	require.NoError(t, err)

	renamed := alice
	renamed.Name = "Alice Renamed"
	identity.user = &renamed

	got, err := content.GetByID(ctx, post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Author.Name)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	content := newContentStore(t, emptyStorage(t), &stubIdentity{user: &alice})
	ctx := context.Background()

	post, err := content.Create(ctx, store.CreatePost{
		Title:   "Original Title",
		Excerpt: "Original excerpt",
		Body:    "Original body",
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	title := "X"
	updated, err := content.Update(ctx, post.ID.String(), store.UpdatePost{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := content.GetByID(ctx, post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "X", got.Title)
	assert.Equal(t, "Original excerpt", got.Excerpt)
	assert.Equal(t, "Original body", got.Body)
	assert.True(t, got.CreatedAt.Equal(post.CreatedAt))
	assert.True(t, got.UpdatedAt.After(post.UpdatedAt))
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	content := newContentStore(t, emptyStorage(t), &stubIdentity{user: &alice})

	title := "X"
	updated, err := content.Update(context.Background(), "missing", store.UpdatePost{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateByNonAuthorIsForbidden(t *testing.T) {
	identity := &stubIdentity{user: &alice}
	content := newContentStore(t, emptyStorage(t), identity)
	ctx := context.Background()

	post, err := content.Create(ctx, store.CreatePost{Title: "Mine", Body: "body"})
	require.NoError(t, err)

	identity.user = &bob
	title := "Stolen"
	_, err = content.Update(ctx, post.ID.String(), store.UpdatePost{Title: &title})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))

	got, err := content.GetByID(ctx, post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Title)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	content := newContentStore(t, emptyStorage(t), &stubIdentity{user: &alice})
	ctx := context.Background()

	first, err := content.Create(ctx, store.CreatePost{Title: "Keep", Body: "body"})
	require.NoError(t, err)
	second, err := content.Create(ctx, store.CreatePost{Title: "Drop", Body: "body"})
	require.NoError(t, err)

	require.NoError(t, content.Delete(ctx, second.ID.String()))

	assert.Equal(t, 1, content.Len())
	_, err = content.GetByID(ctx, second.ID.String())
	assert.True(t, apperrors.IsNotFound(err))
	_, err = content.GetByID(ctx, first.ID.String())
	assert.NoError(t, err)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	content := newContentStore(t, emptyStorage(t), &stubIdentity{user: &alice})
	require.NoError(t, content.Delete(context.Background(), "missing"))
}

func TestDeleteByNonAuthorIsForbidden(t *testing.T) {
	identity := &stubIdentity{user: &alice}
	content := newContentStore(t, emptyStorage(t), identity)
	ctx := context.Background()

	post, err := content.Create(ctx, store.CreatePost{Title: "Mine", Body: "body"})
	require.NoError(t, err)

	identity.user = &bob
	err = content.Delete(ctx, post.ID.String())
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
	assert.Equal(t, 1, content.Len())
}

func TestGetByAuthor(t *testing.T) {
	identity := &stubIdentity{user: &alice}
	content := newContentStore(t, emptyStorage(t), identity)
	ctx := context.Background()

	p1, err := content.Create(ctx, store.CreatePost{Title: "P1", Body: "body"})
	require.NoError(t, err)

	byAlice := content.GetByAuthor(ctx, alice.ID)
	require.Len(t, byAlice, 1)
	assert.True(t, byAlice[0].ID.Equals(p1.ID))

	assert.Empty(t, content.GetByAuthor(ctx, bob.ID))
}

func TestRoundTripThroughStorage(t *testing.T) {
	storage := emptyStorage(t)
	identity := &stubIdentity{user: &alice}
	content := newContentStore(t, storage, identity)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := content.Create(ctx, store.CreatePost{
			Title:   title,
			Excerpt: "about " + title,
			Body:    "# " + title + "\n\nbody text",
		})
		require.NoError(t, err)
	}

	reopened := newContentStore(t, storage, identity)

	// Identical collection: order and every field value.
	want, err := json.Marshal(content.All(ctx))
	require.NoError(t, err)
	got, err := json.Marshal(reopened.All(ctx))
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestSeedsSampleCollectionWhenStorageIsEmpty(t *testing.T) {
	storage := memory.NewStore()
	content := newContentStore(t, storage, &stubIdentity{})
	ctx := context.Background()

	assert.Equal(t, len(store.SamplePosts()), content.Len())

	// Seeding alone must not persist; the collection document appears
	// only after the first mutation.
	raw, err := storage.Get(ctx, ports.KeyPosts)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestSanitizesTitleAndCoverImage(t *testing.T) {
	content := newContentStore(t, emptyStorage(t), &stubIdentity{user: &alice})

	post, err := content.Create(context.Background(), store.CreatePost{
		Title:      "Hello <script>alert(1)</script>World",
		Body:       "body",
		CoverImage: "javascript:alert(1)",
	})
	require.NoError(t, err)
	assert.NotContains(t, post.Title, "<script>")
	assert.Empty(t, post.CoverImage)
}
