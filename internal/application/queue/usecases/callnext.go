package usecases

import (
	"context"
	"time"

	"waitline/internal/application/queue/dto"
	"waitline/internal/domain/queue"
	"waitline/internal/shared/errors"
	"waitline/internal/shared/logger"
)

type CallNextCommand struct {
	OwnerID uint
}

// CallNextResult reports the claimed ticket, or a nil Ticket when the
// queue had nothing waiting.
type CallNextResult struct {
	Ticket *dto.TicketDTO
}

type CallNextUseCase struct {
	ticketRepo queue.TicketRepository
	logger     logger.Interface
}

func NewCallNextUseCase(
	ticketRepo queue.TicketRepository,
	logger logger.Interface,
) *CallNextUseCase {
	return &CallNextUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CallNextUseCase) Execute(ctx context.Context, cmd CallNextCommand) (*CallNextResult, error) {
	uc.logger.Infow("executing call next use case", "owner_id", cmd.OwnerID)

	if cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	ticket, err := uc.ticketRepo.ClaimNextWaiting(ctx, cmd.OwnerID, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to claim next ticket", "owner_id", cmd.OwnerID, "error", err)
		return nil, err
	}

	if ticket == nil {
		uc.logger.Infow("no waiting tickets to call", "owner_id", cmd.OwnerID)
		return &CallNextResult{}, nil
	}

	uc.logger.Infow("ticket called",
		"ticket_id", ticket.ID(),
		"number", ticket.Number())

	return &CallNextResult{Ticket: dto.FromTicket(ticket)}, nil
}
