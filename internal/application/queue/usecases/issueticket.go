package usecases

import (
	"context"

	"waitline/internal/application/queue/dto"
	"waitline/internal/domain/queue"
	vo "waitline/internal/domain/queue/valueobjects"
	"waitline/internal/shared/biztime"
	"waitline/internal/shared/errors"
	"waitline/internal/shared/logger"
)

// IssueTicketCommand creates a waiting ticket. Number is the display
// label: used as-is when the client supplies one, otherwise generated
// from the owner's daily per-class counter.
type IssueTicketCommand struct {
	OwnerID              uint
	ServiceClass         string
	Number               *string
	EstimatedWaitMinutes *int
	PriorityWeight       *int
}

type IssueTicketUseCase struct {
	ticketRepo   queue.TicketRepository
	txRunner     TransactionRunner
	serviceTimes queue.ServiceTimes
	counterBases queue.CounterBases
	logger       logger.Interface
}

func NewIssueTicketUseCase(
	ticketRepo queue.TicketRepository,
	txRunner TransactionRunner,
	serviceTimes queue.ServiceTimes,
	counterBases queue.CounterBases,
	logger logger.Interface,
) *IssueTicketUseCase {
	return &IssueTicketUseCase{
		ticketRepo:   ticketRepo,
		txRunner:     txRunner,
		serviceTimes: serviceTimes,
		counterBases: counterBases,
		logger:       logger,
	}
}

func (uc *IssueTicketUseCase) Execute(ctx context.Context, cmd IssueTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing issue ticket use case", "owner_id", cmd.OwnerID, "service_class", cmd.ServiceClass)

	if cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	class, err := vo.NewServiceClass(cmd.ServiceClass)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	weight := class.DefaultWeight()
	if cmd.PriorityWeight != nil {
		weight = *cmd.PriorityWeight
	}

	// Counter lookup and insert run in one transaction so concurrent
	// issuance cannot hand out the same display number.
	var ticket *queue.Ticket
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		number := ""
		if cmd.Number != nil && *cmd.Number != "" {
			number = *cmd.Number
		} else {
			// Daily display counters start over at local midnight.
			midnight := biztime.StartOfDayUTC(biztime.NowUTC())
			issuedToday, err := uc.ticketRepo.CountByClassSince(txCtx, cmd.OwnerID, class, midnight)
			if err != nil {
				uc.logger.Errorw("failed to count today's tickets", "error", err)
				return err
			}

			counter := uc.counterBases.NextCounter(class.IsPriority(), issuedToday)
			number = queue.DisplayNumber(class, counter)
		}

		estimate := 0
		if cmd.EstimatedWaitMinutes != nil {
			estimate = *cmd.EstimatedWaitMinutes
		} else {
			waiting, err := uc.ticketRepo.ListWaitingByOwner(txCtx, cmd.OwnerID)
			if err != nil {
				uc.logger.Errorw("failed to list waiting tickets", "error", err)
				return err
			}
			estimate = queue.EstimateWait(waiting, class, uc.serviceTimes)
		}

		ticket, err = queue.NewTicket(cmd.OwnerID, number, class, estimate, weight)
		if err != nil {
			uc.logger.Errorw("failed to create ticket entity", "error", err)
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Save(txCtx, ticket); err != nil {
			uc.logger.Errorw("failed to save ticket", "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket issued successfully",
		"ticket_id", ticket.ID(),
		"number", ticket.Number(),
		"estimated_wait_minutes", ticket.EstimatedWait())

	return dto.FromTicket(ticket), nil
}
