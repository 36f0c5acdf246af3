package vlive

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionCache(t *testing.T) {
	var signIns atomic.Int32
	inner := signInHandler(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			signIns.Add(1)
		}
		inner.ServeHTTP(w, r)
	})
	client := newTestClient(t, handler)
	ctx := context.Background()

	cache := client.NewSessionCache(time.Minute)

	first, err := cache.Get(ctx, "user@example.com", "right")
	require.NoError(t, err)
	require.EqualValues(t, 1, signIns.Load())

	// a hit reuses the signed-in session
	second, err := cache.Get(ctx, "user@example.com", "right")
	require.NoError(t, err)
	require.Same(t, first, second)
	require.EqualValues(t, 1, signIns.Load())

	cache.Evict("user@example.com")
	_, err = cache.Get(ctx, "user@example.com", "right")
	require.NoError(t, err)
	require.EqualValues(t, 2, signIns.Load())
}

func TestSessionCacheRejectedCredentials(t *testing.T) {
	client := newTestClient(t, signInHandler(t))

	cache := client.NewSessionCache(0)
	_, err := cache.Get(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, ErrSignInFailed)
}
