package queue

import (
	"context"
	"time"

	vo "waitline/internal/domain/queue/valueobjects"
)

// TicketRepository defines persistence for queue tickets.
type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*Ticket, error)
	ListWaitingByOwner(ctx context.Context, ownerID uint) ([]*Ticket, error)
	CountByClassSince(ctx context.Context, ownerID uint, class vo.ServiceClass, since time.Time) (int64, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteByOwner(ctx context.Context, ownerID uint) (int64, error)

	// ClaimNextWaiting atomically moves the owner's next waiting ticket
	// (highest priority weight, earliest issue time) to serving and
	// returns it. Returns (nil, nil) when nothing is waiting. The claim
	// is a conditional update so concurrent callers never serve the
	// same ticket twice.
	ClaimNextWaiting(ctx context.Context, ownerID uint, at time.Time) (*Ticket, error)
}
