package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"
)

func setupTestRedis(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client), mr
}

func TestStore_Get_Success(t *testing.T) {
	s, mr := setupTestRedis(t)

	require.NoError(t, mr.Set("storefront:cart", `[{"id":"m1"}]`))

	got, err := s.Get(context.Background(), "storefront:cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"m1"}]`), got)
}

func TestStore_Get_NotFound(t *testing.T) {
	s, _ := setupTestRedis(t)

	got, err := s.Get(context.Background(), "storefront:missing")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_Set_Overwrites(t *testing.T) {
	s, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "storefront:wishlist", []byte(`["m1"]`)))
	require.NoError(t, s.Set(ctx, "storefront:wishlist", []byte(`["m1","w2"]`)))

	got, err := mr.Get("storefront:wishlist")
	require.NoError(t, err)
	assert.Equal(t, `["m1","w2"]`, got)
}

func TestStore_Set_NoExpiry(t *testing.T) {
	s, mr := setupTestRedis(t)

	require.NoError(t, s.Set(context.Background(), "storefront:cart", []byte(`[]`)))
	assert.Equal(t, int64(0), int64(mr.TTL("storefront:cart")))
}

func TestStore_Delete(t *testing.T) {
	s, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("storefront:cart", `[]`))
	require.NoError(t, s.Delete(ctx, "storefront:cart"))
	assert.False(t, mr.Exists("storefront:cart"))

	// Deleting an absent key is not an error.
	assert.NoError(t, s.Delete(ctx, "storefront:cart"))
}

func TestStore_Get_AfterServerStop(t *testing.T) {
	s, mr := setupTestRedis(t)
	mr.Close()

	_, err := s.Get(context.Background(), "storefront:cart")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
