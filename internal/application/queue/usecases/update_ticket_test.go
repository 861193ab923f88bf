package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waitline/internal/domain/queue"
	vo "waitline/internal/domain/queue/valueobjects"
	"waitline/internal/shared/errors"
)

func ownedTicket(t *testing.T, id, ownerID uint, status vo.TicketStatus) *queue.Ticket {
	t.Helper()
	now := time.Now()
	var servedAt *time.Time
	if status == vo.StatusServing {
		at := now
		servedAt = &at
	}
	tk, err := queue.ReconstructTicket(
		id, ownerID, "1001", vo.ClassRegular, status,
		0, 0, now, servedAt, nil, nil, now, now,
	)
	require.NoError(t, err)
	return tk
}

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	newUseCase := func(repo *mockTicketRepository) *UpdateTicketUseCase {
		return NewUpdateTicketUseCase(repo, &mockLogger{})
	}
	strPtr := func(s string) *string { return &s }

	t.Run("waiting to serving", func(t *testing.T) {
		var updated *queue.Ticket
		mockRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*queue.Ticket, error) {
				return ownedTicket(t, 1, 7, vo.StatusWaiting), nil
			},
			UpdateFunc: func(ctx context.Context, tk *queue.Ticket) error {
				updated = tk
				return nil
			},
		}

		result, err := newUseCase(mockRepo).Execute(context.Background(), UpdateTicketCommand{
			TicketID:     1,
			ActingUserID: 7,
			Status:       strPtr("serving"),
		})

		require.NoError(t, err)
		assert.Equal(t, "serving", result.Status)
		assert.NotNil(t, result.ServedAt)
		require.NotNil(t, updated)
		assert.Equal(t, vo.StatusServing, updated.Status())
	})

	t.Run("client timestamp applied to matching status", func(t *testing.T) {
		at := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
		mockRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*queue.Ticket, error) {
				return ownedTicket(t, 1, 7, vo.StatusServing), nil
			},
		}

		result, err := newUseCase(mockRepo).Execute(context.Background(), UpdateTicketCommand{
			TicketID:     1,
			ActingUserID: 7,
			Status:       strPtr("completed"),
			CompletedAt:  &at,
		})

		require.NoError(t, err)
		require.NotNil(t, result.CompletedAt)
		assert.Equal(t, at, *result.CompletedAt)
		assert.Nil(t, result.ServedAt)
	})

	t.Run("forbidden for non-owner", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*queue.Ticket, error) {
				return ownedTicket(t, 1, 7, vo.StatusWaiting), nil
			},
		}

		_, err := newUseCase(mockRepo).Execute(context.Background(), UpdateTicketCommand{
			TicketID:     1,
			ActingUserID: 8,
			Status:       strPtr("serving"),
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("illegal transition is a conflict", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*queue.Ticket, error) {
				return ownedTicket(t, 1, 7, vo.StatusWaiting), nil
			},
		}

		_, err := newUseCase(mockRepo).Execute(context.Background(), UpdateTicketCommand{
			TicketID:     1,
			ActingUserID: 7,
			Status:       strPtr("completed"),
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("invalid status string", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*queue.Ticket, error) {
				return ownedTicket(t, 1, 7, vo.StatusWaiting), nil
			},
		}

		_, err := newUseCase(mockRepo).Execute(context.Background(), UpdateTicketCommand{
			TicketID:     1,
			ActingUserID: 7,
			Status:       strPtr("done"),
		})
		assert.Error(t, err)
	})

	t.Run("priority weight update", func(t *testing.T) {
		weight := 3
		mockRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*queue.Ticket, error) {
				return ownedTicket(t, 1, 7, vo.StatusWaiting), nil
			},
		}

		result, err := newUseCase(mockRepo).Execute(context.Background(), UpdateTicketCommand{
			TicketID:       1,
			ActingUserID:   7,
			PriorityWeight: &weight,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, result.PriorityWeight)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*queue.Ticket, error) {
				return ownedTicket(t, 1, 7, vo.StatusWaiting), nil
			},
		}

		_, err := newUseCase(mockRepo).Execute(context.Background(), UpdateTicketCommand{
			TicketID:     1,
			ActingUserID: 7,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("non-owner gets forbidden even with timestamp-only payload", func(t *testing.T) {
		at := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
		mockRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*queue.Ticket, error) {
				return ownedTicket(t, 1, 7, vo.StatusWaiting), nil
			},
		}

		_, err := newUseCase(mockRepo).Execute(context.Background(), UpdateTicketCommand{
			TicketID:     1,
			ActingUserID: 8,
			ServedAt:     &at,
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}
