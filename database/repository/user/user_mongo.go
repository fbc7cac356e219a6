package userRepo

import (
	"context"
	"fmt"
	"time"

	"shiftsync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection("user_names")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// GetByEmail retrieves the display name stored for email.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.DisplayName, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var name models.DisplayName
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&name); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch display name for %s: %w", email, err)
	}
	return &name, nil
}

// Upsert stores firstName for email, keeping the original creation time.
func (r *MongoUserRepo) Upsert(ctx context.Context, email, firstName string) (*models.DisplayName, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"email": email}
	update := bson.M{
		"$set":         bson.M{"firstName": firstName, "updatedAt": now},
		"$setOnInsert": bson.M{"email": email, "createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var name models.DisplayName
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&name); err != nil {
		return nil, fmt.Errorf("failed to save display name for %s: %w", email, err)
	}
	return &name, nil
}
