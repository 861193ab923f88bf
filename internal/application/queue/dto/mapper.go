package dto

import "waitline/internal/domain/queue"

// FromTicket converts a domain ticket to its DTO form.
func FromTicket(t *queue.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:                   t.ID(),
		Number:               t.Number(),
		ServiceClass:         t.Class().String(),
		Status:               t.Status().String(),
		PriorityWeight:       t.PriorityWeight(),
		EstimatedWaitMinutes: t.EstimatedWait(),
		IssuedAt:             t.IssuedAt(),
		ServedAt:             t.ServedAt(),
		CompletedAt:          t.CompletedAt(),
		NoShowAt:             t.NoShowAt(),
		CreatedAt:            t.CreatedAt(),
		UpdatedAt:            t.UpdatedAt(),
	}
}

// FromTickets converts a slice of domain tickets.
func FromTickets(tickets []*queue.Ticket) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, FromTicket(t))
	}
	return result
}
