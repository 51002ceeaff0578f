package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/umalmyha/loyalty/internal/model"
)

// CustomerService is a mock type for the CustomerService type
type CustomerService struct {
	mock.Mock
}

// FindAll provides a mock function with given fields: _a0
func (_m *CustomerService) FindAll(_a0 context.Context) ([]*model.Customer, error) {
	ret := _m.Called(_a0)

	var r0 []*model.Customer
	if rf, ok := ret.Get(0).(func(context.Context) []*model.Customer); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(_a0)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Save provides a mock function with given fields: _a0, _a1
func (_m *CustomerService) Save(_a0 context.Context, _a1 *model.Customer) (*model.Customer, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *model.Customer
	if rf, ok := ret.Get(0).(func(context.Context, *model.Customer) *model.Customer); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *model.Customer) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteByID provides a mock function with given fields: _a0, _a1
func (_m *CustomerService) DeleteByID(_a0 context.Context, _a1 string) error {
	ret := _m.Called(_a0, _a1)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByCodeLike provides a mock function with given fields: _a0, _a1
func (_m *CustomerService) FindByCodeLike(_a0 context.Context, _a1 string) ([]*model.Customer, error) {
	ret := _m.Called(_a0, _a1)

	var r0 []*model.Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) []*model.Customer); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByNameLike provides a mock function with given fields: _a0, _a1
func (_m *CustomerService) FindByNameLike(_a0 context.Context, _a1 string) ([]*model.Customer, error) {
	ret := _m.Called(_a0, _a1)

	var r0 []*model.Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) []*model.Customer); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByPointsGreaterThan provides a mock function with given fields: _a0, _a1
func (_m *CustomerService) FindByPointsGreaterThan(_a0 context.Context, _a1 int) ([]*model.Customer, error) {
	ret := _m.Called(_a0, _a1)

	var r0 []*model.Customer
	if rf, ok := ret.Get(0).(func(context.Context, int) []*model.Customer); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type mockConstructorTestingTNewCustomerService interface {
	mock.TestingT
	Cleanup(func())
}

// NewCustomerService creates a new instance of CustomerService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCustomerService(t mockConstructorTestingTNewCustomerService) *CustomerService {
	m := &CustomerService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
