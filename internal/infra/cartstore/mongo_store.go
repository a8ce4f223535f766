package cartstore

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "carts"

// MongoCartStore keeps one document per session. Every write is conditional
// on the version the caller loaded.
type MongoCartStore struct {
	collection *mongo.Collection
	ttl        time.Duration
}

func NewMongoCartStore(db *mongo.Database, ttl time.Duration) *MongoCartStore {
	return &MongoCartStore{
		collection: db.Collection(collectionName),
		ttl:        ttl,
	}
}

func (s *MongoCartStore) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(s.ttl.Seconds())),
		},
	}

	if _, err := s.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return infra.WrapRepoErr("failed to create cart indexes", err)
	}
	return nil
}

func (s *MongoCartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	var doc cartDocument
	err := s.collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart", err)
	}

	c, err := doc.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode cart", err)
	}
	return c, nil
}

func (s *MongoCartStore) Save(ctx context.Context, c *cart.Cart) (*cart.Cart, error) {
	items, err := toItems(c.Lines())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode cart items", err)
	}

	if c.Version() == 0 {
		doc := cartDocument{
			SessionID: c.SessionID(),
			Items:     items,
			Version:   1,
			CreatedAt: c.CreatedAt(),
			UpdatedAt: c.UpdatedAt(),
		}
		if _, err := s.collection.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, infra.WrapRepoErr("cart created concurrently", err, infra.KindConflict)
			}
			return nil, infra.WrapRepoErr("failed to insert cart", err)
		}
		return cart.Reconstruct(c.SessionID(), c.Lines(), 1, c.CreatedAt(), c.UpdatedAt()), nil
	}

	filter := bson.M{"session_id": c.SessionID(), "version": c.Version()}
	update := bson.M{
		"$set": bson.M{"items": items, "updated_at": c.UpdatedAt()},
		"$inc": bson.M{"version": 1},
	}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update cart", err)
	}
	if result.MatchedCount == 0 {
		return nil, infra.WrapRepoErr("cart version changed", nil, infra.KindConflict)
	}

	return cart.Reconstruct(c.SessionID(), c.Lines(), c.Version()+1, c.CreatedAt(), c.UpdatedAt()), nil
}
