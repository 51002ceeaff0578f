package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/loyalty/internal/model"
	"github.com/umalmyha/loyalty/pkg/db/transactor"
)

// UserRepository represents behavior for user repository
type UserRepository interface {
	FindByUsername(context.Context, string) (*model.User, error)
	Upsert(context.Context, *model.User) error
}

type postgresUserRepository struct {
	executor transactor.PgxWithinTransactionExecutor
}

// NewPostgresUserRepository builds new postgres user repository
func NewPostgresUserRepository(executor transactor.PgxWithinTransactionExecutor) UserRepository {
	return &postgresUserRepository{executor: executor}
}

func (r *postgresUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	q := "SELECT username, password_hash, roles FROM users WHERE username = $1"

	var u model.User
	var roles []string

	row := r.executor.Executor(ctx).QueryRow(ctx, q, username)
	if err := row.Scan(&u.Username, &u.PasswordHash, &roles); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	u.Roles = model.RolesOf(roles...)
	return &u, nil
}

func (r *postgresUserRepository) Upsert(ctx context.Context, u *model.User) error {
	q := `INSERT INTO users(username, password_hash, roles) VALUES($1, $2, $3)
		  ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, roles = EXCLUDED.roles`
	if _, err := r.executor.Executor(ctx).Exec(ctx, q, u.Username, u.PasswordHash, u.Roles.Strings()); err != nil {
		return err
	}
	return nil
}
