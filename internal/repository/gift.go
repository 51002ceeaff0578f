package repository

import (
	"context"

	"github.com/umalmyha/loyalty/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GiftCollection is the name of mongo collection with gifts
const GiftCollection = "gift"

// GiftRepository represents behavior for gift repository
type GiftRepository interface {
	FindAll(context.Context) ([]*model.Gift, error)
	Save(context.Context, *model.Gift) (*model.Gift, error)
	DeleteByID(context.Context, string) error
	FindByCodeLike(context.Context, string) ([]*model.Gift, error)
	FindByNameLike(context.Context, string) ([]*model.Gift, error)
	FindByPriceAtMost(context.Context, int) ([]*model.Gift, error)
}

type mongoGiftRepository struct {
	docs *mongoDocuments[model.Gift, *model.Gift]
}

// NewMongoGiftRepository builds new mongo gift repository
func NewMongoGiftRepository(db *mongo.Database) GiftRepository {
	return &mongoGiftRepository{
		docs: newMongoDocuments[model.Gift](db.Collection(GiftCollection)),
	}
}

func (r *mongoGiftRepository) FindAll(ctx context.Context) ([]*model.Gift, error) {
	return r.docs.findAll(ctx)
}

func (r *mongoGiftRepository) Save(ctx context.Context, g *model.Gift) (*model.Gift, error) {
	return r.docs.save(ctx, g)
}

func (r *mongoGiftRepository) DeleteByID(ctx context.Context, id string) error {
	return r.docs.deleteByID(ctx, id)
}

func (r *mongoGiftRepository) FindByCodeLike(ctx context.Context, code string) ([]*model.Gift, error) {
	return r.docs.findLike(ctx, "code", code)
}

func (r *mongoGiftRepository) FindByNameLike(ctx context.Context, name string) ([]*model.Gift, error) {
	return r.docs.findLike(ctx, "name", name)
}

func (r *mongoGiftRepository) FindByPriceAtMost(ctx context.Context, price int) ([]*model.Gift, error) {
	return r.docs.find(ctx, bson.M{"price": bson.M{"$lte": price}})
}
