package usecases

import (
	"context"

	"waitline/internal/application/queue/dto"
)

// TransactionRunner runs a function inside a store transaction so that
// repository calls made within it see a consistent snapshot.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type IssueTicketExecutor interface {
	Execute(ctx context.Context, cmd IssueTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type CallNextExecutor interface {
	Execute(ctx context.Context, cmd CallNextCommand) (*CallNextResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetCountersExecutor interface {
	Execute(ctx context.Context, query GetCountersQuery) (*GetCountersResult, error)
}

type ResetQueueExecutor interface {
	Execute(ctx context.Context, cmd ResetQueueCommand) (*ResetQueueResult, error)
}
