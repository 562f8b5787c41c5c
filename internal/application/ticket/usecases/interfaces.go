package usecases

import (
	"context"

	"bureau/internal/shared/db"
)

// TxManager runs a function inside one store transaction. Satisfied by
// *db.TransactionManager; tests substitute a passthrough.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TxManager = (*db.TransactionManager)(nil)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type MoveTicketExecutor interface {
	Execute(ctx context.Context, cmd MoveTicketCommand) (*MoveTicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListTimeSegmentsExecutor interface {
	Execute(ctx context.Context, query ListTimeSegmentsQuery) (*ListTimeSegmentsResult, error)
}
