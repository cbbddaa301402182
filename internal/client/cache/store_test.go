package cache

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/blogfolio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/blogfolio/internal/logging"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'z'

	out, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), out)
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisStore(t *testing.T) {
	mr, rdb := newRedis(t)
	exerciseStore(t, NewRedisStore(rdb, "test:"))

	require.NoError(t, NewRedisStore(rdb, "test:").Set(context.Background(), "postsCache", []byte("x")))
	got, err := mr.Get("test:postsCache")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestRedisStore_ErrorsWrapped(t *testing.T) {
	mr, rdb := newRedis(t)
	s := NewRedisStore(rdb, "")
	mr.Close()

	_, err := s.Get(context.Background(), "k")
	assert.ErrorContains(t, err, "redis get k")
	assert.ErrorContains(t, s.Set(context.Background(), "k", nil), "redis set k")
	assert.ErrorContains(t, s.Delete(context.Background(), "k"), "redis del k")
}

func TestSQLiteMetadataAsStore(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL, updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	exerciseStore(t, metadata.NewSQLiteRepository(db))
}

func TestNewStoreWithFallback(t *testing.T) {
	ctx := context.Background()
	fallback := NewMemoryStore()
	log := logging.NewNopLogger()

	t.Run("nil client", func(t *testing.T) {
		assert.Same(t, fallback, NewStoreWithFallback(ctx, nil, fallback, log))
	})

	t.Run("reachable redis", func(t *testing.T) {
		_, rdb := newRedis(t)
		s := NewStoreWithFallback(ctx, rdb, fallback, nil)
		assert.IsType(t, &RedisStore{}, s)
	})

	t.Run("unreachable redis", func(t *testing.T) {
		mr, rdb := newRedis(t)
		mr.Close()
		assert.Same(t, fallback, NewStoreWithFallback(ctx, rdb, fallback, log))
	})
}
