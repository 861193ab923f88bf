package usecases

import (
	"context"
	"time"

	"waitline/internal/domain/queue"
	vo "waitline/internal/domain/queue/valueobjects"
	"waitline/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc               func(ctx context.Context, t *queue.Ticket) error
	UpdateFunc             func(ctx context.Context, t *queue.Ticket) error
	FindByIDFunc           func(ctx context.Context, id uint) (*queue.Ticket, error)
	ListByOwnerFunc        func(ctx context.Context, ownerID uint) ([]*queue.Ticket, error)
	ListWaitingByOwnerFunc func(ctx context.Context, ownerID uint) ([]*queue.Ticket, error)
	CountByClassSinceFunc  func(ctx context.Context, ownerID uint, class vo.ServiceClass, since time.Time) (int64, error)
	DeleteByIDFunc         func(ctx context.Context, id uint) error
	DeleteByOwnerFunc      func(ctx context.Context, ownerID uint) (int64, error)
	ClaimNextWaitingFunc   func(ctx context.Context, ownerID uint, at time.Time) (*queue.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *queue.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *queue.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*queue.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*queue.Ticket, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListWaitingByOwner(ctx context.Context, ownerID uint) ([]*queue.Ticket, error) {
	if m.ListWaitingByOwnerFunc != nil {
		return m.ListWaitingByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByClassSince(ctx context.Context, ownerID uint, class vo.ServiceClass, since time.Time) (int64, error) {
	if m.CountByClassSinceFunc != nil {
		return m.CountByClassSinceFunc(ctx, ownerID, class, since)
	}
	return 0, nil
}

func (m *mockTicketRepository) DeleteByID(ctx context.Context, id uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) DeleteByOwner(ctx context.Context, ownerID uint) (int64, error) {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, ownerID)
	}
	return 0, nil
}

func (m *mockTicketRepository) ClaimNextWaiting(ctx context.Context, ownerID uint, at time.Time) (*queue.Ticket, error) {
	if m.ClaimNextWaitingFunc != nil {
		return m.ClaimNextWaitingFunc(ctx, ownerID, at)
	}
	return nil, nil
}

// mockTxRunner runs the function directly without a real transaction.
type mockTxRunner struct{}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                     {}
func (m *mockLogger) Info(msg string, args ...any)                      {}
func (m *mockLogger) Warn(msg string, args ...any)                      {}
func (m *mockLogger) Error(msg string, args ...any)                     {}
func (m *mockLogger) Fatal(msg string, args ...any)                     {}
func (m *mockLogger) With(args ...any) logger.Interface                 { return m }
func (m *mockLogger) Named(name string) logger.Interface                { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})   {}
