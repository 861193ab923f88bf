package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusWaiting   TicketStatus = "waiting"
	StatusServing   TicketStatus = "serving"
	StatusCompleted TicketStatus = "completed"
	StatusNoShow    TicketStatus = "no-show"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusWaiting:   true,
	StatusServing:   true,
	StatusCompleted: true,
	StatusNoShow:    true,
}

// The lifecycle is monotonic: a ticket never moves back toward waiting,
// and completed/no-show are terminal.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusWaiting: {
		StatusServing,
	},
	StatusServing: {
		StatusCompleted,
		StatusNoShow,
	},
	StatusCompleted: {},
	StatusNoShow:    {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsWaiting() bool {
	return ts == StatusWaiting
}

func (ts TicketStatus) IsServing() bool {
	return ts == StatusServing
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

func (ts TicketStatus) IsNoShow() bool {
	return ts == StatusNoShow
}

// IsTerminal reports whether no further transition is allowed.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusCompleted || ts == StatusNoShow
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
