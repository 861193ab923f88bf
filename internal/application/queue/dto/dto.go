package dto

import "time"

// TicketDTO is the application-level view of a queue ticket.
type TicketDTO struct {
	ID                   uint       `json:"id"`
	Number               string     `json:"number"`
	ServiceClass         string     `json:"service_class"`
	Status               string     `json:"status"`
	PriorityWeight       int        `json:"priority_weight"`
	EstimatedWaitMinutes int        `json:"estimated_wait_minutes"`
	IssuedAt             time.Time  `json:"issued_at"`
	ServedAt             *time.Time `json:"served_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	NoShowAt             *time.Time `json:"no_show_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}
