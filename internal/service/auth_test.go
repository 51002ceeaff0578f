package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/loyalty/internal/auth"
	"github.com/umalmyha/loyalty/internal/model"
	"github.com/umalmyha/loyalty/internal/repository/mocks"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "secret_password"

type authServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	authSvc        AuthService
	transactorMock *mocks.Transactor
	userRpsMock    *mocks.UserRepository
}

func (s *authServiceTestSuite) SetupTest() {
	t := s.T()
	s.ctx = context.Background()
	s.transactorMock = mocks.NewTransactor(t)
	s.userRpsMock = mocks.NewUserRepository(t)

	authSvc, err := NewAuthService(bcrypt.MinCost, s.transactorMock, s.userRpsMock)
	s.Require().NoError(err, "failed to build auth service")
	s.authSvc = authSvc
}

func (s *authServiceTestSuite) withinTransaction() {
	s.transactorMock.On(
		"WithinTransaction",
		s.ctx,
		mock.AnythingOfType("func(context.Context) error"),
	).Return(func(ctx context.Context, txFunc func(ctx context.Context) error) error {
		return txFunc(ctx)
	}).Once()
}

func (s *authServiceTestSuite) TestProvision() {
	s.withinTransaction()
	s.userRpsMock.On("Upsert", s.ctx, mock.AnythingOfType("*model.User")).Return(nil).Twice()

	s.T().Log("default accounts must be stored with hashed passwords")
	{
		err := s.authSvc.Provision(s.ctx, auth.DefaultAccounts("user", "admin")...)
		s.Assert().NoError(err, "no error must be raised")

		for _, call := range s.userRpsMock.Calls {
			u := call.Arguments.Get(1).(*model.User)
			s.Assert().NotEqual(u.Username, u.PasswordHash, "password must be hashed")
			s.Assert().NoError(auth.VerifyPassword(u.PasswordHash, u.Username), "hash must match password")
		}
	}
}

func (s *authServiceTestSuite) TestProvisionFailed() {
	s.withinTransaction()
	s.userRpsMock.On("Upsert", s.ctx, mock.AnythingOfType("*model.User")).Return(errors.New("db err")).Once()

	s.T().Log("failed upsert must abort provisioning")
	{
		err := s.authSvc.Provision(s.ctx, auth.DefaultAccounts("user", "admin")...)
		s.Assert().Error(err, "repository raised error - error must be raised up")
	}
}

func (s *authServiceTestSuite) TestVerify() {
	hash, err := auth.GeneratePasswordHash(testPassword, bcrypt.MinCost)
	s.Require().NoError(err, "failed to hash password")

	admin := &model.User{Username: "admin", PasswordHash: hash, Roles: model.Roles{model.RoleAdmin, model.RoleEmployee}}
	s.userRpsMock.On("FindByUsername", s.ctx, "admin").Return(admin, nil)
	s.userRpsMock.On("FindByUsername", s.ctx, "ghost").Return(nil, nil).Once()

	s.T().Log("correct credentials")
	{
		roles, err := s.authSvc.Verify(s.ctx, "admin", testPassword)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().True(roles.Has(model.RoleAdmin), "admin role must be granted")
	}

	s.T().Log("wrong password")
	{
		_, err := s.authSvc.Verify(s.ctx, "admin", "wrong")
		s.Assert().ErrorIs(err, auth.ErrInvalidCredentials, "credentials must be rejected")
	}

	s.T().Log("unknown user")
	{
		_, err := s.authSvc.Verify(s.ctx, "ghost", testPassword)
		s.Assert().ErrorIs(err, auth.ErrInvalidCredentials, "credentials must be rejected")
	}
}

// start auth service test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(authServiceTestSuite))
}
