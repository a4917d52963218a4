package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inkwell/pkg/auth"
)

func TestTokenBucketAllowsBurstThenBlocks(t *testing.T) {
	limiter := auth.NewTokenBucketLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "attempt %d within burst", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestTokenBucketKeysAreIndependent(t *testing.T) {
	limiter := auth.NewTokenBucketLimiter(1, time.Hour)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestTokenBucketRefills(t *testing.T) {
	limiter := auth.NewTokenBucketLimiter(1, 10*time.Millisecond)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	time.Sleep(25 * time.Millisecond)
	assert.True(t, limiter.Allow("10.0.0.1"))
}
