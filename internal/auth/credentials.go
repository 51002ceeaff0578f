package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/umalmyha/loyalty/internal/model"
)

// ErrInvalidCredentials is raised when user is unknown or password doesn't match
var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialVerifier verifies credentials and returns roles granted to user
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (model.Roles, error)
}

// Account is a user provisioned at process start
type Account struct {
	Username string
	Password string
	Roles    model.Roles
}

// DefaultAccounts returns employee and administrator accounts
func DefaultAccounts(userPassword, adminPassword string) []Account {
	return []Account{
		{Username: "user", Password: userPassword, Roles: model.Roles{model.RoleEmployee}},
		{Username: "admin", Password: adminPassword, Roles: model.Roles{model.RoleAdmin, model.RoleEmployee}},
	}
}

// StaticCredentials is in-memory credential store, it is immutable after construction
type StaticCredentials struct {
	users           map[string]model.User
	placeholderHash string
}

// NewStaticCredentials hashes passwords of provided accounts and builds StaticCredentials
func NewStaticCredentials(cost int, accounts ...Account) (*StaticCredentials, error) {
	placeholder, err := PlaceholderHash(cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password - %w", err)
	}

	users := make(map[string]model.User, len(accounts))
	for _, acc := range accounts {
		hash, err := GeneratePasswordHash(acc.Password, cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for user %s - %w", acc.Username, err)
		}

		users[acc.Username] = model.User{
			Username:     acc.Username,
			PasswordHash: hash,
			Roles:        acc.Roles,
		}
	}
	return &StaticCredentials{users: users, placeholderHash: placeholder}, nil
}

// Verify verifies credentials against in-memory users
func (s *StaticCredentials) Verify(_ context.Context, username, password string) (model.Roles, error) {
	u, ok := s.users[username]

	hash := s.placeholderHash
	if ok {
		hash = u.PasswordHash
	}

	if err := VerifyPassword(hash, password); err != nil || !ok {
		return nil, ErrInvalidCredentials
	}
	return u.Roles, nil
}
