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
	"inkwell/pkg/sanitize"
)

// CreatePost carries the author-supplied fields of a new post. Identifier,
// timestamps and author snapshot are assigned by the store.
type CreatePost struct {
	Title      string
	Excerpt    string
	Body       string
	CoverImage string
}

// UpdatePost is a partial field set merged onto an existing post. Nil
// fields are left unchanged.
type UpdatePost struct {
	Title      *string
	Excerpt    *string
	Body       *string
	CoverImage *string
}

// ContentStore owns the full post collection. Every mutation rewrites the
// whole serialized collection to durable storage synchronously; reads are
// served from memory.
type ContentStore struct {
	mu        sync.RWMutex
	storage   ports.Storage
	identity  ports.IdentitySource
	sanitizer *sanitize.PostSanitizer
	logger    *zap.Logger
	metrics   *observability.Metrics

	posts []entities.Post
}

// NewContentStore constructs the store from the persisted collection.
// When no collection document exists yet, the built-in sample collection
// is used and is not persisted until the first mutation.
func NewContentStore(
	ctx context.Context,
	storage ports.Storage,
	identity ports.IdentitySource,
	sanitizer *sanitize.PostSanitizer,
	logger *zap.Logger,
	metrics *observability.Metrics,
) (*ContentStore, error) {
	s := &ContentStore{
		storage:   storage,
		identity:  identity,
		sanitizer: sanitizer,
		logger:    logger,
		metrics:   metrics,
	}

	raw, err := storage.Get(ctx, ports.KeyPosts)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		s.posts = SamplePosts()
		logger.Info("no stored collection, seeded sample posts",
			zap.Int("count", len(s.posts)))
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.posts); err != nil {
		return nil, apperrors.NewStorageError("load posts", err)
	}
	return s, nil
}

// Create adds a post authored by the current identity, prepending it to
// the collection. Fails with NotAuthenticated when no identity is
// signed in.
func (s *ContentStore) Create(ctx context.Context, input CreatePost) (entities.Post, error) {
	author := s.identity.Current()
	if author == nil {
		return entities.Post{}, apperrors.NewNotAuthenticatedError("User must be logged in to create a blog")
	}

	post, err := entities.NewPost(
		s.sanitizer.Text(input.Title),
		s.sanitizer.Text(input.Excerpt),
		input.Body,
		s.sanitizer.ImageURL(input.CoverImage),
		*author,
	)
	if err != nil {
		return entities.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append([]entities.Post{post}, s.posts...)
	if err := s.persistLocked(ctx); err != nil {
		s.posts = s.posts[1:]
		return entities.Post{}, err
	}

	s.metrics.RecordPostOperation("create")
	s.logger.Info("post created",
		zap.String("postID", post.ID.String()),
		zap.String("authorID", author.ID),
	)
	return post, nil
}

// Update merges the partial field set onto the post with the given id and
// refreshes its updated timestamp. Unknown ids are a silent no-op. Only
// the post's author may update it.
func (s *ContentStore) Update(ctx context.Context, id string, changes UpdatePost) (*entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, nil
	}
	if err := s.authorizeLocked(idx); err != nil {
		return nil, err
	}

	original := s.posts[idx]
	post := &s.posts[idx]
	if changes.Title != nil {
		post.Title = s.sanitizer.Text(*changes.Title)
	}
	if changes.Excerpt != nil {
		post.Excerpt = s.sanitizer.Text(*changes.Excerpt)
	}
	if changes.Body != nil {
		post.Body = *changes.Body
	}
	if changes.CoverImage != nil {
		post.CoverImage = s.sanitizer.ImageURL(*changes.CoverImage)
	}
	post.Touch()

	if err := s.persistLocked(ctx); err != nil {
		s.posts[idx] = original
		return nil, err
	}

	s.metrics.RecordPostOperation("update")
	s.logger.Info("post updated", zap.String("postID", id))
	updated := *post
	return &updated, nil
}

// Delete removes the post with the given id. Unknown ids are a silent
// no-op. Only the post's author may delete it.
func (s *ContentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}
	if err := s.authorizeLocked(idx); err != nil {
		return err
	}

	removed := s.posts[idx]
	s.posts = append(s.posts[:idx:idx], s.posts[idx+1:]...)
	if err := s.persistLocked(ctx); err != nil {
		rest := append([]entities.Post{removed}, s.posts[idx:]...)
		s.posts = append(s.posts[:idx], rest...)
		return err
	}

	s.metrics.RecordPostOperation("delete")
	s.logger.Info("post deleted", zap.String("postID", id))
	return nil
}

// GetByID returns the post with the given id, or a NotFound error.
func (s *ContentStore) GetByID(ctx context.Context, id string) (entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexLocked(id); idx >= 0 {
		return s.posts[idx], nil
	}
	return entities.Post{}, apperrors.NewNotFoundError("post")
}

// GetByAuthor returns all posts whose author snapshot matches authorID,
// preserving collection order.
func (s *ContentStore) GetByAuthor(ctx context.Context, authorID string) []entities.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var posts []entities.Post
	for _, post := range s.posts {
		if post.AuthoredBy(authorID) {
			posts = append(posts, post)
		}
	}
	return posts
}

// All returns a copy of the whole collection, newest-created first.
func (s *ContentStore) All(ctx context.Context) []entities.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]entities.Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

// Len returns the collection size.
func (s *ContentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

func (s *ContentStore) indexLocked(id string) int {
	for i, post := range s.posts {
		if post.ID.String() == id {
			return i
		}
	}
	return -1
}

// authorizeLocked verifies the current identity is the author of the post
// at idx. Mutating another author's post is refused here, not left to the
// view layer.
func (s *ContentStore) authorizeLocked(idx int) error {
	current := s.identity.Current()
	if current == nil {
		return apperrors.NewNotAuthenticatedError("User must be logged in to modify a blog")
	}
	if !s.posts[idx].AuthoredBy(current.ID) {
		return apperrors.NewForbiddenError("only the author may modify this post")
	}
	return nil
}

// persistLocked rewrites the entire collection document.
func (s *ContentStore) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.posts)
	if err != nil {
		return apperrors.NewStorageError("encode posts", err)
	}
	start := time.Now()
	if err := s.storage.Put(ctx, ports.KeyPosts, raw); err != nil {
		return err
	}
	s.metrics.RecordStorageWrite(time.Since(start))
	return nil
}
