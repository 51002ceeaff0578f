package service

import (
	"context"
	"fmt"

	"github.com/umalmyha/loyalty/internal/auth"
	"github.com/umalmyha/loyalty/internal/model"
	"github.com/umalmyha/loyalty/internal/repository"
	"github.com/umalmyha/loyalty/pkg/db/transactor"
)

// AuthService provisions accounts in persistent storage and verifies credentials against it
type AuthService interface {
	auth.CredentialVerifier
	Provision(context.Context, ...auth.Account) error
}

type authService struct {
	bcryptCost      int
	placeholderHash string
	transactor      transactor.Transactor
	userRps         repository.UserRepository
}

// NewAuthService builds new auth service
func NewAuthService(bcryptCost int, trx transactor.Transactor, userRps repository.UserRepository) (AuthService, error) {
	placeholder, err := auth.PlaceholderHash(bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password - %w", err)
	}

	return &authService{
		bcryptCost:      bcryptCost,
		placeholderHash: placeholder,
		transactor:      trx,
		userRps:         userRps,
	}, nil
}

func (s *authService) Provision(ctx context.Context, accounts ...auth.Account) error {
	users := make([]*model.User, 0, len(accounts))
	for _, acc := range accounts {
		hash, err := auth.GeneratePasswordHash(acc.Password, s.bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for user %s - %w", acc.Username, err)
		}
		users = append(users, &model.User{Username: acc.Username, PasswordHash: hash, Roles: acc.Roles})
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, u := range users {
			if err := s.userRps.Upsert(ctx, u); err != nil {
				return fmt.Errorf("failed to provision user %s - %w", u.Username, err)
			}
		}
		return nil
	})
}

func (s *authService) Verify(ctx context.Context, username, password string) (model.Roles, error) {
	u, err := s.userRps.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	hash := s.placeholderHash
	if u != nil {
		hash = u.PasswordHash
	}

	if err := auth.VerifyPassword(hash, password); err != nil || u == nil {
		return nil, auth.ErrInvalidCredentials
	}
	return u.Roles, nil
}
