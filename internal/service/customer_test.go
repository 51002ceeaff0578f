package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/loyalty/internal/model"
	"github.com/umalmyha/loyalty/internal/repository/mocks"
)

type customerServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	customer        *model.Customer
	customerSvc     CustomerService
	customerRpsMock *mocks.CustomerRepository
}

func (s *customerServiceTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.customer = &model.Customer{
		ID:      "ecc770d9-4576-4f72-affa-8b1454246692",
		Code:    "C1",
		Name:    "Alice",
		Points:  10,
		Email:   "a@x.com",
		Address: "Rome",
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	s.customerRpsMock = mocks.NewCustomerRepository(s.T())
	s.customerSvc = NewCustomerService(s.customerRpsMock)
}

func (s *customerServiceTestSuite) TestFindAllEmpty() {
	s.customerRpsMock.On("FindAll", s.ctx).Return([]*model.Customer{}, nil).Once()

	s.T().Log("empty result is not an error on service level")
	{
		customers, err := s.customerSvc.FindAll(s.ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Empty(customers, "no customers must be returned")
	}
}

func (s *customerServiceTestSuite) TestSave() {
	s.customerRpsMock.On("Save", s.ctx, s.customer).Return(s.customer, nil).Once()

	s.T().Log("customer must be passed to repository as is")
	{
		c, err := s.customerSvc.Save(s.ctx, s.customer)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(s.customer, c, "persisted customer must be returned")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDStoreFailure() {
	s.customerRpsMock.On("DeleteByID", s.ctx, s.customer.ID).Return(errors.New("connection refused")).Once()

	s.T().Log("store error must be raised up")
	{
		err := s.customerSvc.DeleteByID(s.ctx, s.customer.ID)
		s.Assert().Error(err, "store raised error - error must be raised up")
	}
}

func (s *customerServiceTestSuite) TestFindByCodeLike() {
	s.customerRpsMock.On("FindByCodeLike", s.ctx, "C*").Return([]*model.Customer{s.customer}, nil).Once()

	customers, err := s.customerSvc.FindByCodeLike(s.ctx, "C*")
	s.Assert().NoError(err, "no error must be raised")
	s.Assert().Len(customers, 1, "customer must be found")
}

func (s *customerServiceTestSuite) TestFindByNameLike() {
	s.customerRpsMock.On("FindByNameLike", s.ctx, "Ali").Return([]*model.Customer{s.customer}, nil).Once()

	customers, err := s.customerSvc.FindByNameLike(s.ctx, "Ali")
	s.Assert().NoError(err, "no error must be raised")
	s.Assert().Len(customers, 1, "customer must be found")
}

func (s *customerServiceTestSuite) TestFindByPointsGreaterThan() {
	s.customerRpsMock.On("FindByPointsGreaterThan", s.ctx, 5).Return([]*model.Customer{s.customer}, nil).Once()

	customers, err := s.customerSvc.FindByPointsGreaterThan(s.ctx, 5)
	s.Assert().NoError(err, "no error must be raised")
	s.Assert().Len(customers, 1, "customer must be found")
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
