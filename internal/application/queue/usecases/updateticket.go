package usecases

import (
	"context"
	"time"

	"waitline/internal/application/queue/dto"
	"waitline/internal/domain/queue"
	vo "waitline/internal/domain/queue/valueobjects"
	"waitline/internal/shared/errors"
	"waitline/internal/shared/logger"
)

// UpdateTicketCommand carries a partial update: nil fields are left
// untouched. Timestamps are only applied alongside the matching status.
type UpdateTicketCommand struct {
	TicketID       uint
	ActingUserID   uint
	Status         *string
	ServedAt       *time.Time
	CompletedAt    *time.Time
	NoShowAt       *time.Time
	PriorityWeight *int
}

type UpdateTicketUseCase struct {
	ticketRepo queue.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo queue.TicketRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "acting_user_id", cmd.ActingUserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActingUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}

	ticket, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	// Ownership is checked before payload validation so a non-owner
	// always gets Forbidden, whatever the request body looks like.
	if !ticket.IsOwnedBy(cmd.ActingUserID) {
		uc.logger.Warnw("ticket update denied",
			"ticket_id", cmd.TicketID,
			"acting_user_id", cmd.ActingUserID)
		return nil, errors.NewForbiddenError("ticket belongs to another user")
	}

	if cmd.Status == nil && cmd.PriorityWeight == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		at := uc.timestampFor(status, cmd)
		if err := ticket.ApplyStatus(status, at); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
	}

	if cmd.PriorityWeight != nil {
		if err := ticket.SetPriorityWeight(*cmd.PriorityWeight); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, ticket); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully",
		"ticket_id", ticket.ID(),
		"status", ticket.Status().String())

	return dto.FromTicket(ticket), nil
}

// timestampFor picks the client-supplied timestamp matching the target
// status, falling back to the server clock when absent.
func (uc *UpdateTicketUseCase) timestampFor(status vo.TicketStatus, cmd UpdateTicketCommand) time.Time {
	var at *time.Time
	switch status {
	case vo.StatusServing:
		at = cmd.ServedAt
	case vo.StatusCompleted:
		at = cmd.CompletedAt
	case vo.StatusNoShow:
		at = cmd.NoShowAt
	}
	if at == nil {
		return time.Time{}
	}
	return *at
}
