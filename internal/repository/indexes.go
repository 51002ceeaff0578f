package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates lookup indexes for customer and gift collections.
// Indexes are not unique, code uniqueness is up to the callers.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, coll := range []string{CustomerCollection, GiftCollection} {
		models := []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "code", Value: 1}},
				Options: options.Index().SetName("code_index"),
			},
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetName("name_index"),
			},
		}

		names, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("failed to create indexes for collection %s - %w", coll, err)
		}
		logrus.Debugf("indexes %v are present in collection %s", names, coll)
	}
	return nil
}
