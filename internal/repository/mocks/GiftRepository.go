package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/umalmyha/loyalty/internal/model"
)

// GiftRepository is a mock type for the GiftRepository type
type GiftRepository struct {
	mock.Mock
}

// FindAll provides a mock function with given fields: _a0
func (_m *GiftRepository) FindAll(_a0 context.Context) ([]*model.Gift, error) {
	ret := _m.Called(_a0)

	var r0 []*model.Gift
	if rf, ok := ret.Get(0).(func(context.Context) []*model.Gift); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Gift)
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
func (_m *GiftRepository) Save(_a0 context.Context, _a1 *model.Gift) (*model.Gift, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *model.Gift
	if rf, ok := ret.Get(0).(func(context.Context, *model.Gift) *model.Gift); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Gift)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *model.Gift) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteByID provides a mock function with given fields: _a0, _a1
func (_m *GiftRepository) DeleteByID(_a0 context.Context, _a1 string) error {
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
func (_m *GiftRepository) FindByCodeLike(_a0 context.Context, _a1 string) ([]*model.Gift, error) {
	ret := _m.Called(_a0, _a1)

	var r0 []*model.Gift
	if rf, ok := ret.Get(0).(func(context.Context, string) []*model.Gift); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Gift)
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
func (_m *GiftRepository) FindByNameLike(_a0 context.Context, _a1 string) ([]*model.Gift, error) {
	ret := _m.Called(_a0, _a1)

	var r0 []*model.Gift
	if rf, ok := ret.Get(0).(func(context.Context, string) []*model.Gift); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Gift)
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

// FindByPriceAtMost provides a mock function with given fields: _a0, _a1
func (_m *GiftRepository) FindByPriceAtMost(_a0 context.Context, _a1 int) ([]*model.Gift, error) {
	ret := _m.Called(_a0, _a1)

	var r0 []*model.Gift
	if rf, ok := ret.Get(0).(func(context.Context, int) []*model.Gift); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Gift)
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

type mockConstructorTestingTNewGiftRepository interface {
	mock.TestingT
	Cleanup(func())
}

// NewGiftRepository creates a new instance of GiftRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewGiftRepository(t mockConstructorTestingTNewGiftRepository) *GiftRepository {
	m := &GiftRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
