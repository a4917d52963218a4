package localstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inkwell/infrastructure/persistence/localstore"
)

func openStore(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(filepath.Join(t.TempDir(), "inkwell.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetAbsentKeyReturnsNil(t *testing.T) {
	s := openStore(t)

	value, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	doc := []byte(`{"hello":"world"}`)
	require.NoError(t, s.Put(ctx, "doc", doc))

	value, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, doc, value)
}

func TestPutOverwritesWholeDocument(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "doc", []byte("first")))
	require.NoError(t, s.Put(ctx, "doc", []byte("second")))

	value, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), value)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "doc", []byte("value")))
	require.NoError(t, s.Delete(ctx, "doc"))
	require.NoError(t, s.Delete(ctx, "doc"))

	value, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestDocumentsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkwell.db")
	ctx := context.Background()

	s, err := localstore.Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "doc", []byte("durable")))
	require.NoError(t, s.Close())

	reopened, err := localstore.Open(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("durable"), value)
}
