package mappers

import (
	"fmt"
	"time"

	"waitline/internal/domain/queue"
	vo "waitline/internal/domain/queue/valueobjects"
	"waitline/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *queue.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*queue.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *queue.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:             t.ID(),
		OwnerID:        t.OwnerID(),
		Number:         t.Number(),
		ServiceClass:   t.Class().String(),
		Status:         t.Status().String(),
		PriorityWeight: t.PriorityWeight(),
		EstimatedWait:  t.EstimatedWait(),
		IssuedAt:       t.IssuedAt().UnixMilli(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
	}

	if t.ServedAt() != nil {
		served := t.ServedAt().UnixMilli()
		model.ServedAt = &served
	}

	if t.CompletedAt() != nil {
		completed := t.CompletedAt().UnixMilli()
		model.CompletedAt = &completed
	}

	if t.NoShowAt() != nil {
		noShow := t.NoShowAt().UnixMilli()
		model.NoShowAt = &noShow
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*queue.Ticket, error) {
	class, err := vo.NewServiceClass(model.ServiceClass)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket (id=%d): %w", model.ID, err)
	}

	var servedAt, completedAt, noShowAt *time.Time
	if model.ServedAt != nil {
		t := millisToTime(*model.ServedAt)
		servedAt = &t
	}
	if model.CompletedAt != nil {
		t := millisToTime(*model.CompletedAt)
		completedAt = &t
	}
	if model.NoShowAt != nil {
		t := millisToTime(*model.NoShowAt)
		noShowAt = &t
	}

	return queue.ReconstructTicket(
		model.ID,
		model.OwnerID,
		model.Number,
		class,
		status,
		model.PriorityWeight,
		model.EstimatedWait,
		millisToTime(model.IssuedAt),
		servedAt,
		completedAt,
		noShowAt,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
