package usecases

import (
	"context"

	"waitline/internal/domain/queue"
	vo "waitline/internal/domain/queue/valueobjects"
	"waitline/internal/shared/biztime"
	"waitline/internal/shared/errors"
	"waitline/internal/shared/logger"
)

type GetCountersQuery struct {
	OwnerID uint
}

// GetCountersResult reports the next display counter per class for the
// current day.
type GetCountersResult struct {
	Regular  int `json:"regular"`
	Priority int `json:"priority"`
}

type GetCountersUseCase struct {
	ticketRepo   queue.TicketRepository
	counterBases queue.CounterBases
	logger       logger.Interface
}

func NewGetCountersUseCase(
	ticketRepo queue.TicketRepository,
	counterBases queue.CounterBases,
	logger logger.Interface,
) *GetCountersUseCase {
	return &GetCountersUseCase{
		ticketRepo:   ticketRepo,
		counterBases: counterBases,
		logger:       logger,
	}
}

func (uc *GetCountersUseCase) Execute(ctx context.Context, query GetCountersQuery) (*GetCountersResult, error) {
	if query.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	midnight := biztime.StartOfDayUTC(biztime.NowUTC())

	regularToday, err := uc.ticketRepo.CountByClassSince(ctx, query.OwnerID, vo.ClassRegular, midnight)
	if err != nil {
		uc.logger.Errorw("failed to count regular tickets", "owner_id", query.OwnerID, "error", err)
		return nil, err
	}

	priorityToday, err := uc.ticketRepo.CountByClassSince(ctx, query.OwnerID, vo.ClassPriority, midnight)
	if err != nil {
		uc.logger.Errorw("failed to count priority tickets", "owner_id", query.OwnerID, "error", err)
		return nil, err
	}

	return &GetCountersResult{
		Regular:  uc.counterBases.NextCounter(false, regularToday),
		Priority: uc.counterBases.NextCounter(true, priorityToday),
	}, nil
}
