package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/puzzle-be/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), filepath.Join(t.TempDir(), "test.db"), true)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestCreateAndFindUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, "alice", "hash-1")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Username)

	found, err := s.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "hash-1", found.PasswordHash)
}

func TestFindByUsername_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "alice", "hash-1")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, "alice", "hash-2")
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestRandomQuestion_Empty(t *testing.T) {
	s := newTestStore(t)

	_, err := s.RandomQuestion(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRandomQuestion_ReturnsRowFromPool(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO questions (kind, prompt, answer) VALUES ('riddle', 'What has keys but no locks?', 'A piano'), ('math', '2+2?', '4')`)
	require.NoError(t, err)

	prompts := map[string]bool{"What has keys but no locks?": true, "2+2?": true}
	for i := 0; i < 10; i++ {
		q, err := s.RandomQuestion(ctx)
		require.NoError(t, err)
		assert.Contains(t, q, "id")
		assert.Contains(t, q, "created_at")
		prompt, ok := q["prompt"].(string)
		require.True(t, ok, "prompt should decode as string, got %T", q["prompt"])
		assert.True(t, prompts[prompt], "unexpected prompt %q", prompt)
	}
}

func TestNewStore_WithoutMigrate(t *testing.T) {
	s, err := NewStore(context.Background(), filepath.Join(t.TempDir(), "bare.db"), false)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.RandomQuestion(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}
