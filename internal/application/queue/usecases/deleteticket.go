package usecases

import (
	"context"

	"waitline/internal/domain/queue"
	"waitline/internal/shared/errors"
	"waitline/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID     uint
	ActingUserID uint
}

type DeleteTicketUseCase struct {
	ticketRepo queue.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo queue.TicketRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "acting_user_id", cmd.ActingUserID)

	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActingUserID == 0 {
		return errors.NewValidationError("acting user ID is required")
	}

	ticket, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if !ticket.IsOwnedBy(cmd.ActingUserID) {
		uc.logger.Warnw("ticket delete denied",
			"ticket_id", cmd.TicketID,
			"acting_user_id", cmd.ActingUserID)
		return errors.NewForbiddenError("ticket belongs to another user")
	}

	if err := uc.ticketRepo.DeleteByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
