package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waitline/internal/domain/queue"
	vo "waitline/internal/domain/queue/valueobjects"
)

func TestGetCountersUseCase_Execute(t *testing.T) {
	newUseCase := func(repo *mockTicketRepository) *GetCountersUseCase {
		return NewGetCountersUseCase(repo, queue.DefaultCounterBases, &mockLogger{})
	}

	t.Run("fresh day starts at the bases", func(t *testing.T) {
		result, err := newUseCase(&mockTicketRepository{}).Execute(context.Background(), GetCountersQuery{OwnerID: 1})

		require.NoError(t, err)
		assert.Equal(t, 1001, result.Regular)
		assert.Equal(t, 1, result.Priority)
	})

	t.Run("counters advance with today's issues", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			CountByClassSinceFunc: func(ctx context.Context, ownerID uint, class vo.ServiceClass, since time.Time) (int64, error) {
				if class.IsPriority() {
					return 4, nil
				}
				return 2, nil
			},
		}

		result, err := newUseCase(mockRepo).Execute(context.Background(), GetCountersQuery{OwnerID: 1})

		require.NoError(t, err)
		assert.Equal(t, 1003, result.Regular)
		assert.Equal(t, 5, result.Priority)
	})

	t.Run("counts are scoped to the owner and today", func(t *testing.T) {
		var seenOwner uint
		var seenSince time.Time
		mockRepo := &mockTicketRepository{
			CountByClassSinceFunc: func(ctx context.Context, ownerID uint, class vo.ServiceClass, since time.Time) (int64, error) {
				seenOwner = ownerID
				seenSince = since
				return 0, nil
			},
		}

		_, err := newUseCase(mockRepo).Execute(context.Background(), GetCountersQuery{OwnerID: 6})

		require.NoError(t, err)
		assert.Equal(t, uint(6), seenOwner)
		assert.False(t, seenSince.After(time.Now()))
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := newUseCase(&mockTicketRepository{}).Execute(context.Background(), GetCountersQuery{})
		assert.Error(t, err)
	})
}

func TestListTicketsUseCase_Execute(t *testing.T) {
	t.Run("returns all owner tickets", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			ListByOwnerFunc: func(ctx context.Context, ownerID uint) ([]*queue.Ticket, error) {
				return []*queue.Ticket{
					waitingTicket(t, 1, vo.ClassRegular),
					waitingTicket(t, 2, vo.ClassPriority),
				}, nil
			},
		}

		uc := NewListTicketsUseCase(mockRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), ListTicketsQuery{OwnerID: 1})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Len(t, result.Tickets, 2)
	})

	t.Run("missing owner", func(t *testing.T) {
		uc := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), ListTicketsQuery{})
		assert.Error(t, err)
	})
}
