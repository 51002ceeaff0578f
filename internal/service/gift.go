package service

import (
	"context"

	"github.com/umalmyha/loyalty/internal/model"
	"github.com/umalmyha/loyalty/internal/repository"
)

// GiftService represents behavior of gift service
type GiftService interface {
	FindAll(context.Context) ([]*model.Gift, error)
	Save(context.Context, *model.Gift) (*model.Gift, error)
	DeleteByID(context.Context, string) error
	FindByCodeLike(context.Context, string) ([]*model.Gift, error)
	FindByNameLike(context.Context, string) ([]*model.Gift, error)
	FindByPriceAtMost(context.Context, int) ([]*model.Gift, error)
}

type giftService struct {
	giftRps repository.GiftRepository
}

// NewGiftService builds new gift service
func NewGiftService(giftRps repository.GiftRepository) GiftService {
	return &giftService{giftRps: giftRps}
}

func (s *giftService) FindAll(ctx context.Context) ([]*model.Gift, error) {
	return s.giftRps.FindAll(ctx)
}

func (s *giftService) Save(ctx context.Context, g *model.Gift) (*model.Gift, error) {
	return s.giftRps.Save(ctx, g)
}

func (s *giftService) DeleteByID(ctx context.Context, id string) error {
	return s.giftRps.DeleteByID(ctx, id)
}

func (s *giftService) FindByCodeLike(ctx context.Context, code string) ([]*model.Gift, error) {
	return s.giftRps.FindByCodeLike(ctx, code)
}

func (s *giftService) FindByNameLike(ctx context.Context, name string) ([]*model.Gift, error) {
	return s.giftRps.FindByNameLike(ctx, name)
}

func (s *giftService) FindByPriceAtMost(ctx context.Context, price int) ([]*model.Gift, error) {
	return s.giftRps.FindByPriceAtMost(ctx, price)
}
