package repository

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const likeWildcard = "*"

type identifiable[T any] interface {
	*T
	Identifier() string
	AssignIdentifier(string)
}

// mongoDocuments holds operations shared by all collections with string _id
type mongoDocuments[T any, PT identifiable[T]] struct {
	coll *mongo.Collection
}

func newMongoDocuments[T any, PT identifiable[T]](coll *mongo.Collection) *mongoDocuments[T, PT] {
	return &mongoDocuments[T, PT]{coll: coll}
}

func (d *mongoDocuments[T, PT]) find(ctx context.Context, filter any) ([]PT, error) {
	cursor, err := d.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]PT, 0)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, PT(&doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (d *mongoDocuments[T, PT]) findAll(ctx context.Context) ([]PT, error) {
	return d.find(ctx, bson.D{})
}

func (d *mongoDocuments[T, PT]) findLike(ctx context.Context, field, pattern string) ([]PT, error) {
	return d.find(ctx, bson.M{field: likeRegex(pattern)})
}

func (d *mongoDocuments[T, PT]) save(ctx context.Context, doc PT) (PT, error) {
	if doc.Identifier() == "" {
		doc.AssignIdentifier(uuid.NewString())
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := d.coll.ReplaceOne(ctx, bson.M{"_id": doc.Identifier()}, doc, opts); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *mongoDocuments[T, PT]) deleteByID(ctx context.Context, id string) error {
	if _, err := d.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	return nil
}

// likeRegex builds unanchored regex where * matches any sequence and everything else is taken literally
func likeRegex(pattern string) primitive.Regex {
	parts := strings.Split(pattern, likeWildcard)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return primitive.Regex{Pattern: strings.Join(parts, ".*")}
}
