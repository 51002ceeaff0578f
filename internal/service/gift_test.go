package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/loyalty/internal/model"
	"github.com/umalmyha/loyalty/internal/repository/mocks"
)

type giftServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	gift        *model.Gift
	giftSvc     GiftService
	giftRpsMock *mocks.GiftRepository
}

func (s *giftServiceTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.gift = &model.Gift{
		ID:          "0f6a6ba4-1d0c-4a43-a9b5-8f1c4f1c2f11",
		Code:        "G1",
		Name:        "Mug",
		Price:       100,
		Description: "Ceramic mug",
		Category:    "kitchen",
	}
}

func (s *giftServiceTestSuite) SetupTest() {
	s.giftRpsMock = mocks.NewGiftRepository(s.T())
	s.giftSvc = NewGiftService(s.giftRpsMock)
}

func (s *giftServiceTestSuite) TestFindAll() {
	s.giftRpsMock.On("FindAll", s.ctx).Return([]*model.Gift{s.gift}, nil).Once()

	gifts, err := s.giftSvc.FindAll(s.ctx)
	s.Assert().NoError(err, "no error must be raised")
	s.Assert().Len(gifts, 1, "gift must be found")
}

func (s *giftServiceTestSuite) TestSaveStoreFailure() {
	s.giftRpsMock.On("Save", s.ctx, s.gift).Return(nil, errors.New("timeout")).Once()

	s.T().Log("store error must be raised up")
	{
		g, err := s.giftSvc.Save(s.ctx, s.gift)
		s.Assert().Error(err, "store raised error - error must be raised up")
		s.Assert().Nil(g, "no gift must be returned")
	}
}

func (s *giftServiceTestSuite) TestDeleteByID() {
	s.giftRpsMock.On("DeleteByID", s.ctx, s.gift.ID).Return(nil).Once()

	err := s.giftSvc.DeleteByID(s.ctx, s.gift.ID)
	s.Assert().NoError(err, "no error must be raised")
}

func (s *giftServiceTestSuite) TestFindByCodeAndName() {
	s.giftRpsMock.On("FindByCodeLike", s.ctx, "G").Return([]*model.Gift{s.gift}, nil).Once()
	s.giftRpsMock.On("FindByNameLike", s.ctx, "Mu").Return([]*model.Gift{}, nil).Once()

	byCode, err := s.giftSvc.FindByCodeLike(s.ctx, "G")
	s.Assert().NoError(err, "no error must be raised")
	s.Assert().Len(byCode, 1, "gift must be found by code")

	byName, err := s.giftSvc.FindByNameLike(s.ctx, "Mu")
	s.Assert().NoError(err, "no error must be raised")
	s.Assert().Empty(byName, "repository result must be returned as is")
}

func (s *giftServiceTestSuite) TestFindByPriceAtMost() {
	s.giftRpsMock.On("FindByPriceAtMost", s.ctx, 100).Return([]*model.Gift{s.gift}, nil).Once()

	gifts, err := s.giftSvc.FindByPriceAtMost(s.ctx, 100)
	s.Assert().NoError(err, "no error must be raised")
	s.Assert().Len(gifts, 1, "gift must be found")
}

// start gift service test suite
func TestGiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(giftServiceTestSuite))
}
