package service

import (
	"context"

	"github.com/umalmyha/loyalty/internal/model"
	"github.com/umalmyha/loyalty/internal/repository"
)

// CustomerService represents behavior of customer service
type CustomerService interface {
	FindAll(context.Context) ([]*model.Customer, error)
	Save(context.Context, *model.Customer) (*model.Customer, error)
	DeleteByID(context.Context, string) error
	FindByCodeLike(context.Context, string) ([]*model.Customer, error)
	FindByNameLike(context.Context, string) ([]*model.Customer, error)
	FindByPointsGreaterThan(context.Context, int) ([]*model.Customer, error)
}

type customerService struct {
	customerRps repository.CustomerRepository
}

// NewCustomerService builds new customer service
func NewCustomerService(customerRps repository.CustomerRepository) CustomerService {
	return &customerService{customerRps: customerRps}
}

func (s *customerService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRps.FindAll(ctx)
}

func (s *customerService) Save(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	return s.customerRps.Save(ctx, c)
}

func (s *customerService) DeleteByID(ctx context.Context, id string) error {
	return s.customerRps.DeleteByID(ctx, id)
}

func (s *customerService) FindByCodeLike(ctx context.Context, code string) ([]*model.Customer, error) {
	return s.customerRps.FindByCodeLike(ctx, code)
}

func (s *customerService) FindByNameLike(ctx context.Context, name string) ([]*model.Customer, error) {
	return s.customerRps.FindByNameLike(ctx, name)
}

func (s *customerService) FindByPointsGreaterThan(ctx context.Context, points int) ([]*model.Customer, error) {
	return s.customerRps.FindByPointsGreaterThan(ctx, points)
}
