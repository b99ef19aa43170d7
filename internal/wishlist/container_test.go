package wishlist

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/store/memory"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestContainer(t *testing.T) (*Container, *memory.Store) {
	t.Helper()
	kv := memory.New()
	c := NewContainer(context.Background(), kv, nil, newTestLogger())
	return c, kv
}

func TestAdd_Idempotent(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	c.Add(ctx, "m1")
	c.Add(ctx, "m1")
	c.Add(ctx, "w2")

	assert.Equal(t, []string{"m1", "w2"}, c.IDs())
	assert.Equal(t, 2, c.Count())
	assert.True(t, c.Contains("m1"))
	assert.False(t, c.Contains("k1"))
}

func TestRemove(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	c.Add(ctx, "m1")
	c.Add(ctx, "w2")
	c.Remove(ctx, "m1")

	assert.Equal(t, []string{"w2"}, c.IDs())

	// Removing an absent ID is a no-op.
	c.Remove(ctx, "m1")
	assert.Equal(t, 1, c.Count())
}

func TestToggle_RoundTrip(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	c.Toggle(ctx, "m1")
	assert.True(t, c.Contains("m1"))

	c.Toggle(ctx, "m1")
	assert.False(t, c.Contains("m1"))
	assert.Equal(t, 0, c.Count())
}

func TestClear(t *testing.T) {
	c, kv := newTestContainer(t)
	ctx := context.Background()

	c.Add(ctx, "m1")
	c.Add(ctx, "w2")
	c.Clear(ctx)

	assert.Empty(t, c.IDs())

	data, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestMutationsDoNotOpenFlag(t *testing.T) {
	c, _ := newTestContainer(t)
	ctx := context.Background()

	c.Add(ctx, "m1")
	c.Toggle(ctx, "w2")
	assert.False(t, c.IsOpen())

	c.SetOpen(true)
	assert.True(t, c.IsOpen())
}

func TestPersistence_RoundTrip(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()

	c1 := NewContainer(ctx, kv, nil, newTestLogger())
	c1.Add(ctx, "m1")
	c1.Add(ctx, "w2")
	c1.Remove(ctx, "m1")

	c2 := NewContainer(ctx, kv, nil, newTestLogger())
	assert.Equal(t, []string{"w2"}, c2.IDs())
}

func TestPersistence_MalformedSnapshotYieldsEmptyWishlist(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, StorageKey, []byte(`{"oops":`)))

	c := NewContainer(ctx, kv, nil, newTestLogger())
	assert.Empty(t, c.IDs())
}

func TestPersistence_DeduplicatesOnRestore(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, StorageKey, []byte(`["m1","m1","","w2"]`)))

	c := NewContainer(ctx, kv, nil, newTestLogger())
	assert.Equal(t, []string{"m1", "w2"}, c.IDs())
}
