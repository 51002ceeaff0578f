package transactor

import (
	"context"
)

// Transactor runs function within single transaction, tx is propagated via context
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}
