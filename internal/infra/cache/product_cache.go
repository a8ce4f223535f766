package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

var ErrCacheMiss = errors.New("cache miss")

type ProductSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

// ProductSnapshotCache serves cart snapshots from Redis and falls back to the
// catalog read store. Concurrent misses for one product share a single load.
type ProductSnapshotCache struct {
	client  *redis.Client
	source  ProductSource
	baseTTL time.Duration
	group   singleflight.Group
}

func NewProductSnapshotCache(client *redis.Client, source ProductSource, baseTTL time.Duration) *ProductSnapshotCache {
	return &ProductSnapshotCache{
		client:  client,
		source:  source,
		baseTTL: baseTTL,
	}
}

func (c *ProductSnapshotCache) Snapshot(ctx context.Context, productID string) (*commands.ProductSnapshot, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
	}

	snap, err := c.get(ctx, id)
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		// Redis trouble degrades to a direct read.
		slog.Warn("product cache read failed", "product_id", productID, "error", err.Error())
	}

	v, err, _ := c.group.Do(id.String(), func() (interface{}, error) {
		p, err := c.source.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		s := &commands.ProductSnapshot{
			ID:      p.ID.String(),
			Name:    p.Name,
			Price:   p.Price,
			InStock: p.InStock,
		}
		if len(p.Images) > 0 {
			s.Image = p.Images[0]
		}
		if err := c.set(ctx, id, s); err != nil {
			slog.Warn("product cache write failed", "product_id", productID, "error", err.Error())
		}
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*commands.ProductSnapshot), nil
}

func (c *ProductSnapshotCache) Invalidate(ctx context.Context, productIDs ...string) error {
	if len(productIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		keys = append(keys, cacheKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (c *ProductSnapshotCache) get(ctx context.Context, id uuid.UUID) (*commands.ProductSnapshot, error) {
	data, err := c.client.Get(ctx, cacheKey(id.String())).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var snap commands.ProductSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal product snapshot failed: %w", err)
	}
	return &snap, nil
}

func (c *ProductSnapshotCache) set(ctx context.Context, id uuid.UUID, snap *commands.ProductSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal product snapshot failed: %w", err)
	}

	// #nosec G404 -- jitter only spreads expirations
	jitter := time.Duration(rand.Int63n(int64(c.baseTTL/5) + 1))
	if err := c.client.Set(ctx, cacheKey(id.String()), data, c.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cacheKey(productID string) string {
	return fmt.Sprintf("product:snapshot:%s", productID)
}
