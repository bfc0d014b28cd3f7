package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"utopian_syncer/internal/domain"
)

type ContributionStore struct {
	coll *mongo.Collection
}

// NewContributionStore returns a store over the named collection. Writes use a
// majority, journaled write concern so a returned write is durable.
func NewContributionStore(db *mongo.Database, collection string) *ContributionStore {
	journal := true
	wc := writeconcern.Majority()
	wc.Journal = &journal

	return &ContributionStore{
		coll: db.Collection(collection, options.Collection().SetWriteConcern(wc)),
	}
}

// EnsureIndexes creates the unique natural-key index. Concurrent upserts to
// the same (author, permlink) race under last-write-wins; the index keeps the
// race from ever producing a duplicate document.
func (s *ContributionStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "author", Value: 1}, {Key: "permlink", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "moderator.account", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// FindByKey returns the id of the document matching the natural key, or ""
// when no document exists.
func (s *ContributionStore) FindByKey(ctx context.Context, author, permlink string) (string, error) {
	var doc struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := s.coll.FindOne(ctx,
		bson.M{"author": author, "permlink": permlink},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find contribution: %w", err)
	}
	return doc.ID.Hex(), nil
}

// Insert stores a new document and returns its id.
func (s *ContributionStore) Insert(ctx context.Context, c *domain.Contribution) (string, error) {
	res, err := s.coll.InsertOne(ctx, c)
	if err != nil {
		return "", fmt.Errorf("insert contribution: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert contribution: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Replace overwrites the identified document field-for-field with c. This is a
// full-document replacement, not a merge.
func (s *ContributionStore) Replace(ctx context.Context, id string, c *domain.Contribution) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parse document id %q: %w", id, err)
	}
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": oid}, c); err != nil {
		return fmt.Errorf("replace contribution: %w", err)
	}
	return nil
}
