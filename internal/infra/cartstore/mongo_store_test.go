//go:build integration

package cartstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"
	"storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

func setupTestStore(t *testing.T) *MongoCartStore {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := ConnectMongoDB(ctx, uri, "storefront_test")
	require.NoError(t, err)

	store := NewMongoCartStore(db, 7*24*time.Hour)
	require.NoError(t, store.EnsureIndexes(ctx))
	return store
}

func TestMongoCartStore(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("load of an unknown session is not found", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("insert then conditional update round trips lines and prices", func(t *testing.T) {
		c := cart.New("sess-roundtrip", time.Now())
		require.NoError(t, c.Add(builder.NewLineBuilder().WithPrice("189.90").WithQuantity(2).MustBuild()))

		saved, err := store.Save(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.Version())

		loaded, err := store.Load(ctx, "sess-roundtrip")
		require.NoError(t, err)
		require.Len(t, loaded.Lines(), 1)
		assert.Equal(t, "379.8", loaded.Subtotal().String())

		require.NoError(t, loaded.Add(builder.NewLineBuilder().WithSize("G").MustBuild()))
		saved, err = store.Save(ctx, loaded)
		require.NoError(t, err)
		assert.Equal(t, int64(2), saved.Version())
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		c := cart.New("sess-stale", time.Now())
		require.NoError(t, c.Add(builder.NewLineBuilder().MustBuild()))
		_, err := store.Save(ctx, c)
		require.NoError(t, err)

		first, err := store.Load(ctx, "sess-stale")
		require.NoError(t, err)
		second, err := store.Load(ctx, "sess-stale")
		require.NoError(t, err)

		first.Drain()
		_, err = store.Save(ctx, first)
		require.NoError(t, err)

		require.NoError(t, second.Add(builder.NewLineBuilder().WithSize("PP").MustBuild()))
		_, err = store.Save(ctx, second)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("concurrent first writes create one document", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				c := cart.New("sess-race", time.Now())
				if errs[i] = c.Add(builder.NewLineBuilder().MustBuild()); errs[i] != nil {
					return
				}
				_, errs[i] = store.Save(ctx, c)
			}(i)
		}
		wg.Wait()

		conflicts := 0
		for _, err := range errs {
			if err != nil {
				require.True(t, infra.IsKind(err, infra.KindConflict))
				conflicts++
			}
		}
		assert.Equal(t, 1, conflicts)
	})

	t.Run("indexes enforce one cart per session and a 7 day expiry", func(t *testing.T) {
		cursor, err := store.collection.Indexes().List(ctx)
		require.NoError(t, err)

		var specs []bson.M
		require.NoError(t, cursor.All(ctx, &specs))

		byKey := map[string]bson.M{}
		for _, spec := range specs {
			keys, ok := spec["key"].(bson.M)
			require.True(t, ok)
			for field := range keys {
				byKey[field] = spec
			}
		}

		sessionIdx, ok := byKey["session_id"]
		require.True(t, ok, "session_id index missing")
		assert.Equal(t, true, sessionIdx["unique"])

		ttlIdx, ok := byKey["updated_at"]
		require.True(t, ok, "updated_at index missing")
		expire, ok := ttlIdx["expireAfterSeconds"]
		require.True(t, ok, "updated_at index has no TTL")
		assert.EqualValues(t, 604800, toInt64(t, expire))
	})
}

func toInt64(t *testing.T, v any) int64 {
	t.Helper()
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		t.Fatalf("unexpected numeric type %T", v)
		return 0
	}
}
