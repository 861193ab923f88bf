package usecases

import (
	"context"

	"waitline/internal/domain/queue"
	"waitline/internal/shared/errors"
	"waitline/internal/shared/logger"
)

type ResetQueueCommand struct {
	OwnerID uint
}

type ResetQueueResult struct {
	Deleted int64
}

// ResetQueueUseCase removes every ticket belonging to the owner.
// Other users' queues are untouched.
type ResetQueueUseCase struct {
	ticketRepo queue.TicketRepository
	logger     logger.Interface
}

func NewResetQueueUseCase(
	ticketRepo queue.TicketRepository,
	logger logger.Interface,
) *ResetQueueUseCase {
	return &ResetQueueUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ResetQueueUseCase) Execute(ctx context.Context, cmd ResetQueueCommand) (*ResetQueueResult, error) {
	uc.logger.Infow("executing reset queue use case", "owner_id", cmd.OwnerID)

	if cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	deleted, err := uc.ticketRepo.DeleteByOwner(ctx, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to reset queue", "owner_id", cmd.OwnerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("queue reset", "owner_id", cmd.OwnerID, "deleted", deleted)

	return &ResetQueueResult{Deleted: deleted}, nil
}
