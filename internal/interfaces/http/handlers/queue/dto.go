package queue

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"waitline/internal/application/queue/usecases"
	"waitline/internal/shared/errors"
)

type IssueTicketRequest struct {
	ServiceClass         string  `json:"service_class" binding:"required,oneof=regular priority"`
	Number               *string `json:"number" binding:"omitempty,max=32"`
	EstimatedWaitMinutes *int    `json:"estimated_wait_minutes" binding:"omitempty,min=0"`
	PriorityWeight       *int    `json:"priority_weight" binding:"omitempty,min=0"`
}

func (r *IssueTicketRequest) ToCommand(ownerID uint) usecases.IssueTicketCommand {
	return usecases.IssueTicketCommand{
		OwnerID:              ownerID,
		ServiceClass:         r.ServiceClass,
		Number:               r.Number,
		EstimatedWaitMinutes: r.EstimatedWaitMinutes,
		PriorityWeight:       r.PriorityWeight,
	}
}

type UpdateTicketRequest struct {
	Status         *string    `json:"status" binding:"omitempty,oneof=waiting serving completed no-show"`
	ServedAt       *time.Time `json:"served_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	NoShowAt       *time.Time `json:"no_show_at"`
	PriorityWeight *int       `json:"priority_weight" binding:"omitempty,min=0"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, actingUserID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:       ticketID,
		ActingUserID:   actingUserID,
		Status:         r.Status,
		ServedAt:       r.ServedAt,
		CompletedAt:    r.CompletedAt,
		NoShowAt:       r.NoShowAt,
		PriorityWeight: r.PriorityWeight,
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
