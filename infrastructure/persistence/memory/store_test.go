package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/infrastructure/persistence/memory"
)

func TestGetAbsentKeyReturnsNil(t *testing.T) {
	s := memory.NewStore()

	value, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestPutGetDelete(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "doc", []byte("value")))

	value, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)

	require.NoError(t, s.Delete(ctx, "doc"))
	value, err = s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestStoreCopiesValues(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	original := []byte("immutable")
	require.NoError(t, s.Put(ctx, "doc", original))
	original[0] = 'X'

	stored, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), stored)

	stored[0] = 'Y'
	again, err := s.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), again)
}
