package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"waitline/internal/domain/queue"
	vo "waitline/internal/domain/queue/valueobjects"
	"waitline/internal/infrastructure/persistence/mappers"
	"waitline/internal/infrastructure/persistence/models"
	db "waitline/internal/shared/db"
	apperrors "waitline/internal/shared/errors"
)

// serveOrder is the canonical serve ordering for waiting tickets.
const serveOrder = "priority_weight DESC, issued_at ASC, id ASC"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *queue.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *queue.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces nil lifecycle timestamps to be written back as NULL,
	// which Updates with a struct would otherwise skip.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("status", "priority_weight", "estimated_wait", "served_at", "completed_at", "no_show_at", "updated_at").
		Updates(map[string]interface{}{
			"status":          model.Status,
			"priority_weight": model.PriorityWeight,
			"estimated_wait":  model.EstimatedWait,
			"served_at":       model.ServedAt,
			"completed_at":    model.CompletedAt,
			"no_show_at":      model.NoShowAt,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*queue.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*queue.Ticket, error) {
	var modelList []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id = ?", ownerID).
		Order("issued_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *TicketRepository) ListWaitingByOwner(ctx context.Context, ownerID uint) ([]*queue.Ticket, error) {
	var modelList []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id = ? AND status = ?", ownerID, vo.StatusWaiting.String()).
		Order(serveOrder).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list waiting tickets: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *TicketRepository) CountByClassSince(ctx context.Context, ownerID uint, class vo.ServiceClass, since time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Where("owner_id = ? AND service_class = ? AND issued_at >= ?", ownerID, class.String(), since.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) DeleteByID(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepository) DeleteByOwner(ctx context.Context, ownerID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("owner_id = ?", ownerID).Delete(&models.TicketModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete tickets: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// ClaimNextWaiting moves the owner's next waiting ticket to serving in a
// single conditional update. The status guard in the WHERE clause makes
// concurrent claims safe: only one caller wins a given ticket, the loser
// retries against the next candidate.
func (r *TicketRepository) ClaimNextWaiting(ctx context.Context, ownerID uint, at time.Time) (*queue.Ticket, error) {
	if at.IsZero() {
		at = time.Now()
	}
	tx := db.GetTxFromContext(ctx, r.db)

	for {
		var candidate models.TicketModel
		err := tx.
			Where("owner_id = ? AND status = ?", ownerID, vo.StatusWaiting.String()).
			Order(serveOrder).
			First(&candidate).Error
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find next waiting ticket: %w", err)
		}

		result := tx.
			Model(&models.TicketModel{}).
			Where("id = ? AND status = ?", candidate.ID, vo.StatusWaiting.String()).
			Updates(map[string]interface{}{
				"status":     vo.StatusServing.String(),
				"served_at":  at.UnixMilli(),
				"updated_at": at.UnixMilli(),
			})
		if result.Error != nil {
			return nil, fmt.Errorf("failed to claim ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// Lost the race for this candidate, try the next one.
			continue
		}

		var claimed models.TicketModel
		if err := tx.First(&claimed, candidate.ID).Error; err != nil {
			return nil, fmt.Errorf("failed to reload claimed ticket: %w", err)
		}
		return r.mapper.ToDomain(&claimed)
	}
}

func (r *TicketRepository) toDomainList(modelList []models.TicketModel) ([]*queue.Ticket, error) {
	tickets := make([]*queue.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
