package queue

import (
	"fmt"
	"sort"

	vo "waitline/internal/domain/queue/valueobjects"
)

// ServiceTimes holds the average handling minutes per service class,
// used for wait estimation.
type ServiceTimes struct {
	RegularMinutes  int
	PriorityMinutes int
}

// DefaultServiceTimes mirrors the configuration defaults.
var DefaultServiceTimes = ServiceTimes{
	RegularMinutes:  8,
	PriorityMinutes: 5,
}

// EstimateWait computes the expected wait in minutes for a new ticket of
// the given class joining behind the supplied waiting tickets.
//
// Priority arrivals wait only behind waiting priority tickets. Regular
// arrivals wait behind every waiting ticket, weighted by each class's
// average service time.
func EstimateWait(waiting []*Ticket, class vo.ServiceClass, times ServiceTimes) int {
	var priorityAhead, regularAhead int
	for _, t := range waiting {
		if !t.Status().IsWaiting() {
			continue
		}
		if t.Class().IsPriority() {
			priorityAhead++
		} else {
			regularAhead++
		}
	}

	if class.IsPriority() {
		return priorityAhead * times.PriorityMinutes
	}
	return priorityAhead*times.PriorityMinutes + regularAhead*times.RegularMinutes
}

// SortWaiting orders tickets into serve order: higher priority weight
// first, then earlier issue time, then lower ID. The slice is sorted in
// place and returned for convenience.
func SortWaiting(tickets []*Ticket) []*Ticket {
	sort.SliceStable(tickets, func(i, j int) bool {
		a, b := tickets[i], tickets[j]
		if a.PriorityWeight() != b.PriorityWeight() {
			return a.PriorityWeight() > b.PriorityWeight()
		}
		if !a.IssuedAt().Equal(b.IssuedAt()) {
			return a.IssuedAt().Before(b.IssuedAt())
		}
		return a.ID() < b.ID()
	})
	return tickets
}

// NextTicket returns the waiting ticket that would be called next, or
// nil when nothing is waiting.
func NextTicket(tickets []*Ticket) *Ticket {
	var next *Ticket
	for _, t := range tickets {
		if !t.Status().IsWaiting() {
			continue
		}
		if next == nil {
			next = t
			continue
		}
		if t.PriorityWeight() != next.PriorityWeight() {
			if t.PriorityWeight() > next.PriorityWeight() {
				next = t
			}
			continue
		}
		if !t.IssuedAt().Equal(next.IssuedAt()) {
			if t.IssuedAt().Before(next.IssuedAt()) {
				next = t
			}
			continue
		}
		if t.ID() < next.ID() {
			next = t
		}
	}
	return next
}

// DisplayNumber renders the public ticket label for a per-class daily
// counter value. Priority numbers carry a P prefix with two digits so
// they read as a separate short sequence at the counter display.
func DisplayNumber(class vo.ServiceClass, counter int) string {
	if class.IsPriority() {
		return fmt.Sprintf("P%02d", counter)
	}
	return fmt.Sprintf("%d", counter)
}
