package usecases

import (
	"context"

	"waitline/internal/application/queue/dto"
	"waitline/internal/domain/queue"
	"waitline/internal/shared/errors"
	"waitline/internal/shared/logger"
)

type ListTicketsQuery struct {
	OwnerID uint
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int
}

type ListTicketsUseCase struct {
	ticketRepo queue.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo queue.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	tickets, err := uc.ticketRepo.ListByOwner(ctx, query.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "owner_id", query.OwnerID, "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.FromTickets(tickets),
		Total:   len(tickets),
	}, nil
}
