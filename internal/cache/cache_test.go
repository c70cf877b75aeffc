package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProfile struct {
	UserID uint     `json:"user_id"`
	Status string   `json:"status"`
	Skills []string `json:"skills"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var out cachedProfile
	found, err := GetJSON(ctx, ProfileKey(1), &out)
	require.NoError(t, err)
	assert.False(t, found)

	in := cachedProfile{UserID: 1, Status: "Developer", Skills: []string{"go", "rust"}}
	require.NoError(t, SetJSON(ctx, ProfileKey(1), in, ProfileTTL))

	found, err = GetJSON(ctx, ProfileKey(1), &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestAsideFetchesOnMissAndCaches(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var dest cachedProfile
	fetch := func() error {
		fetches++
		dest = cachedProfile{UserID: 7, Status: "Student"}
		return nil
	}

	require.NoError(t, Aside(ctx, ProfileKey(7), &dest, ProfileTTL, fetch))
	assert.Equal(t, 1, fetches)

	// Second call served from cache.
	var dest2 cachedProfile
	require.NoError(t, Aside(ctx, ProfileKey(7), &dest2, ProfileTTL, func() error {
		fetches++
		return nil
	}))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, dest, dest2)
}

func TestAsidePropagatesFetchError(t *testing.T) {
	setupMiniredis(t)

	var dest cachedProfile
	wantErr := errors.New("db down")
	err := Aside(context.Background(), ProfileKey(9), &dest, ProfileTTL, func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestAsideWithoutClient(t *testing.T) {
	SetClient(nil)

	fetches := 0
	var dest cachedProfile
	fetch := func() error {
		fetches++
		dest = cachedProfile{UserID: 3}
		return nil
	}

	// Without a client every call falls through to fetch.
	require.NoError(t, Aside(context.Background(), ProfileKey(3), &dest, ProfileTTL, fetch))
	require.NoError(t, Aside(context.Background(), ProfileKey(3), &dest, ProfileTTL, fetch))
	assert.Equal(t, 2, fetches)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, ProfileKey(1), cachedProfile{UserID: 1}, time.Minute))
	require.NoError(t, SetJSON(ctx, ProfileListKey, []cachedProfile{{UserID: 1}}, time.Minute))

	InvalidateProfile(ctx, 1)

	assert.False(t, mr.Exists(ProfileKey(1)))
	assert.False(t, mr.Exists(ProfileListKey))
}
