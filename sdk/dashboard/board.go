package dashboard

import (
	"context"
	"sort"
	"time"
)

// Board mirrors the caller's queue state and derives dashboard views
// locally. Every mutation refetches the full ticket list from the
// server rather than patching the local copy, so the board never
// drifts from the store.
type Board struct {
	client  *Client
	tickets []Ticket
}

// NewBoard creates a board backed by the given client. Call Refresh
// before reading views.
func NewBoard(client *Client) *Board {
	return &Board{client: client}
}

// Refresh reloads the ticket list from the server.
func (b *Board) Refresh(ctx context.Context) error {
	tickets, err := b.client.Tickets(ctx)
	if err != nil {
		return err
	}
	b.tickets = tickets
	return nil
}

// Issue creates a ticket and refreshes the board.
func (b *Board) Issue(ctx context.Context, req IssueRequest) (*Ticket, error) {
	ticket, err := b.client.Issue(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := b.Refresh(ctx); err != nil {
		return nil, err
	}
	return ticket, nil
}

// CallNext claims the next waiting ticket and refreshes the board.
// Returns (nil, nil) when the queue is empty.
func (b *Board) CallNext(ctx context.Context) (*Ticket, error) {
	ticket, err := b.client.CallNext(ctx)
	if err != nil {
		return nil, err
	}
	if err := b.Refresh(ctx); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Complete marks a serving ticket completed and refreshes the board.
func (b *Board) Complete(ctx context.Context, ticketID uint) (*Ticket, error) {
	return b.setStatus(ctx, ticketID, StatusCompleted)
}

// NoShow marks a serving ticket as a no-show and refreshes the board.
func (b *Board) NoShow(ctx context.Context, ticketID uint) (*Ticket, error) {
	return b.setStatus(ctx, ticketID, StatusNoShow)
}

func (b *Board) setStatus(ctx context.Context, ticketID uint, status string) (*Ticket, error) {
	ticket, err := b.client.Update(ctx, ticketID, UpdateRequest{Status: &status})
	if err != nil {
		return nil, err
	}
	if err := b.Refresh(ctx); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Delete removes a ticket and refreshes the board.
func (b *Board) Delete(ctx context.Context, ticketID uint) error {
	if err := b.client.Delete(ctx, ticketID); err != nil {
		return err
	}
	return b.Refresh(ctx)
}

// Reset deletes all tickets and refreshes the board.
func (b *Board) Reset(ctx context.Context) (*ResetResult, error) {
	result, err := b.client.Reset(ctx)
	if err != nil {
		return nil, err
	}
	if err := b.Refresh(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// Tickets returns all mirrored tickets, oldest first.
func (b *Board) Tickets() []Ticket {
	return b.tickets
}

// Waiting returns the waiting tickets in serve order: priority weight
// descending, then issue time ascending, then id.
func (b *Board) Waiting() []Ticket {
	var waiting []Ticket
	for _, t := range b.tickets {
		if t.Status == StatusWaiting {
			waiting = append(waiting, t)
		}
	}
	sort.SliceStable(waiting, func(i, j int) bool {
		if waiting[i].PriorityWeight != waiting[j].PriorityWeight {
			return waiting[i].PriorityWeight > waiting[j].PriorityWeight
		}
		if !waiting[i].IssuedAt.Equal(waiting[j].IssuedAt) {
			return waiting[i].IssuedAt.Before(waiting[j].IssuedAt)
		}
		return waiting[i].ID < waiting[j].ID
	})
	return waiting
}

// Serving returns the ticket currently being served, or nil.
func (b *Board) Serving() *Ticket {
	for i := range b.tickets {
		if b.tickets[i].Status == StatusServing {
			return &b.tickets[i]
		}
	}
	return nil
}

// ClassStats holds per-class waiting and completed counts.
type ClassStats struct {
	Waiting   int
	Completed int
}

// Stats returns waiting and completed counts keyed by service class.
func (b *Board) Stats() map[string]ClassStats {
	stats := map[string]ClassStats{
		ClassRegular:  {},
		ClassPriority: {},
	}
	for _, t := range b.tickets {
		s := stats[t.ServiceClass]
		switch t.Status {
		case StatusWaiting:
			s.Waiting++
		case StatusCompleted:
			s.Completed++
		}
		stats[t.ServiceClass] = s
	}
	return stats
}

// NoShowCount returns the number of no-show tickets.
func (b *Board) NoShowCount() int {
	count := 0
	for _, t := range b.tickets {
		if t.Status == StatusNoShow {
			count++
		}
	}
	return count
}

// AverageWait returns the mean estimated wait of the waiting set.
func (b *Board) AverageWait() time.Duration {
	total := 0
	count := 0
	for _, t := range b.tickets {
		if t.Status == StatusWaiting {
			total += t.EstimatedWaitMinutes
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return time.Duration(total/count) * time.Minute
}
