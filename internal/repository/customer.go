package repository

import (
	"context"

	"github.com/umalmyha/loyalty/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CustomerCollection is the name of mongo collection with customers
const CustomerCollection = "customer"

// CustomerRepository represents behavior for customer repository
type CustomerRepository interface {
	FindAll(context.Context) ([]*model.Customer, error)
	Save(context.Context, *model.Customer) (*model.Customer, error)
	DeleteByID(context.Context, string) error
	FindByCodeLike(context.Context, string) ([]*model.Customer, error)
	FindByNameLike(context.Context, string) ([]*model.Customer, error)
	FindByPointsGreaterThan(context.Context, int) ([]*model.Customer, error)
}

type mongoCustomerRepository struct {
	docs *mongoDocuments[model.Customer, *model.Customer]
}

// NewMongoCustomerRepository builds new mongo customer repository
func NewMongoCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepository{
		docs: newMongoDocuments[model.Customer](db.Collection(CustomerCollection)),
	}
}

func (r *mongoCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	return r.docs.findAll(ctx)
}

func (r *mongoCustomerRepository) Save(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	return r.docs.save(ctx, c)
}

func (r *mongoCustomerRepository) DeleteByID(ctx context.Context, id string) error {
	return r.docs.deleteByID(ctx, id)
}

func (r *mongoCustomerRepository) FindByCodeLike(ctx context.Context, code string) ([]*model.Customer, error) {
	return r.docs.findLike(ctx, "code", code)
}

func (r *mongoCustomerRepository) FindByNameLike(ctx context.Context, name string) ([]*model.Customer, error) {
	return r.docs.findLike(ctx, "name", name)
}

func (r *mongoCustomerRepository) FindByPointsGreaterThan(ctx context.Context, points int) ([]*model.Customer, error) {
	return r.docs.find(ctx, bson.M{"points": bson.M{"$gt": points}})
}
