package session

import (
	"context"
	"sync"
	"testing"

	"learnify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateResolve(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user := models.User{ID: 7, Username: "alice", Email: "alice@example.com", Role: models.RoleStudent, FullName: "Alice"}
	token, err := store.Create(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, ok := store.Resolve(ctx, token)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Username, got.Username)
	assert.Equal(t, user.Role, got.Role)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Resolve(context.Background(), "not-a-token")
	assert.False(t, ok)
}

func TestMemoryStoreTokensDoNotExpire(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, models.User{ID: 1, Username: "a"})
	require.NoError(t, err)

	// Revoking an unrelated token leaves the first one valid.
	other, err := store.Create(ctx, models.User{ID: 2, Username: "b"})
	require.NoError(t, err)
	require.NoError(t, store.Revoke(ctx, other))

	_, ok := store.Resolve(ctx, token)
	assert.True(t, ok)
	_, ok = store.Resolve(ctx, other)
	assert.False(t, ok)
}

func TestMemoryStoreRevoke(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, models.User{ID: 1})
	require.NoError(t, err)
	require.NoError(t, store.Revoke(ctx, token))

	_, ok := store.Resolve(ctx, token)
	assert.False(t, ok)

	// Revoking twice is fine.
	assert.NoError(t, store.Revoke(ctx, token))
}

func TestMemoryStoreConcurrentSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// Multiple logins for the same user each get their own token.
	user := models.User{ID: 3, Username: "carol"}
	first, err := store.Create(ctx, user)
	require.NoError(t, err)
	second, err := store.Create(ctx, user)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := store.Create(ctx, user)
			assert.NoError(t, err)
			_, ok := store.Resolve(ctx, token)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}

func TestNewTokenShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := NewToken()
		assert.Len(t, token, 64)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
