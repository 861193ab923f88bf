package queue

import (
	"fmt"
	"time"

	vo "waitline/internal/domain/queue/valueobjects"
)

// Ticket is a single queue position record for one customer interaction.
// Tickets belong to exactly one owner and move through the monotonic
// lifecycle waiting -> serving -> completed | no-show.
type Ticket struct {
	id             uint
	ownerID        uint
	number         string
	class          vo.ServiceClass
	status         vo.TicketStatus
	priorityWeight int
	estimatedWait  int
	issuedAt       time.Time
	servedAt       *time.Time
	completedAt    *time.Time
	noShowAt       *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewTicket creates a waiting ticket. The display number is a label
// chosen by the caller; uniqueness is not enforced here. A negative
// priorityWeight is rejected; pass the class default via
// class.DefaultWeight() when no override is wanted.
func NewTicket(
	ownerID uint,
	number string,
	class vo.ServiceClass,
	estimatedWait int,
	priorityWeight int,
) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !class.IsValid() {
		return nil, fmt.Errorf("invalid service class")
	}
	if estimatedWait < 0 {
		return nil, fmt.Errorf("estimated wait cannot be negative")
	}
	if priorityWeight < 0 {
		return nil, fmt.Errorf("priority weight cannot be negative")
	}

	now := time.Now()

	return &Ticket{
		ownerID:        ownerID,
		number:         number,
		class:          class,
		status:         vo.StatusWaiting,
		priorityWeight: priorityWeight,
		estimatedWait:  estimatedWait,
		issuedAt:       now,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state.
func ReconstructTicket(
	id uint,
	ownerID uint,
	number string,
	class vo.ServiceClass,
	status vo.TicketStatus,
	priorityWeight int,
	estimatedWait int,
	issuedAt time.Time,
	servedAt *time.Time,
	completedAt *time.Time,
	noShowAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !class.IsValid() {
		return nil, fmt.Errorf("invalid service class")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status")
	}

	return &Ticket{
		id:             id,
		ownerID:        ownerID,
		number:         number,
		class:          class,
		status:         status,
		priorityWeight: priorityWeight,
		estimatedWait:  estimatedWait,
		issuedAt:       issuedAt,
		servedAt:       servedAt,
		completedAt:    completedAt,
		noShowAt:       noShowAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Class() vo.ServiceClass {
	return t.class
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) PriorityWeight() int {
	return t.priorityWeight
}

func (t *Ticket) EstimatedWait() int {
	return t.estimatedWait
}

func (t *Ticket) IssuedAt() time.Time {
	return t.issuedAt
}

func (t *Ticket) ServedAt() *time.Time {
	return t.servedAt
}

func (t *Ticket) CompletedAt() *time.Time {
	return t.completedAt
}

func (t *Ticket) NoShowAt() *time.Time {
	return t.noShowAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsOwnedBy reports whether the acting user owns this ticket. Every
// mutating operation must check this before touching the ticket.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.ownerID == userID
}

// SetPriorityWeight overrides the serve-order weight.
func (t *Ticket) SetPriorityWeight(weight int) error {
	if weight < 0 {
		return fmt.Errorf("priority weight cannot be negative")
	}
	t.priorityWeight = weight
	t.updatedAt = time.Now()
	return nil
}

// MarkServing transitions the ticket from waiting to serving. A zero
// time means "now".
func (t *Ticket) MarkServing(at time.Time) error {
	if !t.status.CanTransitionTo(vo.StatusServing) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, vo.StatusServing)
	}

	if at.IsZero() {
		at = time.Now()
	}

	t.status = vo.StatusServing
	t.servedAt = &at
	t.completedAt = nil
	t.noShowAt = nil
	t.updatedAt = time.Now()

	return nil
}

// MarkCompleted transitions the ticket from serving to completed.
// Exactly one lifecycle timestamp stays non-nil, matching the status.
func (t *Ticket) MarkCompleted(at time.Time) error {
	if !t.status.CanTransitionTo(vo.StatusCompleted) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, vo.StatusCompleted)
	}

	if at.IsZero() {
		at = time.Now()
	}

	t.status = vo.StatusCompleted
	t.completedAt = &at
	t.servedAt = nil
	t.noShowAt = nil
	t.updatedAt = time.Now()

	return nil
}

// MarkNoShow transitions the ticket from serving to no-show.
func (t *Ticket) MarkNoShow(at time.Time) error {
	if !t.status.CanTransitionTo(vo.StatusNoShow) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, vo.StatusNoShow)
	}

	if at.IsZero() {
		at = time.Now()
	}

	t.status = vo.StatusNoShow
	t.noShowAt = &at
	t.servedAt = nil
	t.completedAt = nil
	t.updatedAt = time.Now()

	return nil
}

// ApplyStatus dispatches to the transition method matching the target
// status, carrying an optional timestamp from the caller.
func (t *Ticket) ApplyStatus(status vo.TicketStatus, at time.Time) error {
	switch status {
	case vo.StatusServing:
		return t.MarkServing(at)
	case vo.StatusCompleted:
		return t.MarkCompleted(at)
	case vo.StatusNoShow:
		return t.MarkNoShow(at)
	case vo.StatusWaiting:
		return fmt.Errorf("cannot transition from %s to %s", t.status, vo.StatusWaiting)
	default:
		return fmt.Errorf("invalid ticket status: %s", status)
	}
}

func (t *Ticket) Validate() error {
	if t.ownerID == 0 {
		return fmt.Errorf("owner ID is required")
	}
	if len(t.number) == 0 {
		return fmt.Errorf("ticket number is required")
	}
	if !t.class.IsValid() {
		return fmt.Errorf("invalid service class")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid ticket status")
	}
	return nil
}
