package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "waitline/internal/domain/queue/valueobjects"
)

func makeWaiting(t *testing.T, id uint, class vo.ServiceClass, issuedAt time.Time) *Ticket {
	t.Helper()
	ticket, err := ReconstructTicket(
		id, 1, "n", class, vo.StatusWaiting,
		class.DefaultWeight(), 0, issuedAt, nil, nil, nil, issuedAt, issuedAt,
	)
	require.NoError(t, err)
	return ticket
}

func TestEstimateWait(t *testing.T) {
	base := time.Now()
	times := DefaultServiceTimes

	t.Run("empty queue", func(t *testing.T) {
		assert.Equal(t, 0, EstimateWait(nil, vo.ClassRegular, times))
		assert.Equal(t, 0, EstimateWait(nil, vo.ClassPriority, times))
	})

	t.Run("regular waits behind everyone", func(t *testing.T) {
		waiting := []*Ticket{
			makeWaiting(t, 1, vo.ClassRegular, base),
			makeWaiting(t, 2, vo.ClassRegular, base.Add(time.Minute)),
			makeWaiting(t, 3, vo.ClassPriority, base.Add(2*time.Minute)),
		}
		// 1 priority * 5 + 2 regular * 8
		assert.Equal(t, 21, EstimateWait(waiting, vo.ClassRegular, times))
	})

	t.Run("priority waits only behind priority", func(t *testing.T) {
		waiting := []*Ticket{
			makeWaiting(t, 1, vo.ClassRegular, base),
			makeWaiting(t, 2, vo.ClassRegular, base.Add(time.Minute)),
			makeWaiting(t, 3, vo.ClassPriority, base.Add(2*time.Minute)),
		}
		assert.Equal(t, 5, EstimateWait(waiting, vo.ClassPriority, times))
	})

	t.Run("non-waiting tickets are ignored", func(t *testing.T) {
		serving := makeWaiting(t, 1, vo.ClassPriority, base)
		require.NoError(t, serving.MarkServing(time.Time{}))
		waiting := []*Ticket{
			serving,
			makeWaiting(t, 2, vo.ClassRegular, base),
		}
		assert.Equal(t, 8, EstimateWait(waiting, vo.ClassRegular, times))
	})

	t.Run("custom service times", func(t *testing.T) {
		waiting := []*Ticket{
			makeWaiting(t, 1, vo.ClassPriority, base),
			makeWaiting(t, 2, vo.ClassRegular, base),
		}
		custom := ServiceTimes{RegularMinutes: 10, PriorityMinutes: 3}
		assert.Equal(t, 13, EstimateWait(waiting, vo.ClassRegular, custom))
		assert.Equal(t, 3, EstimateWait(waiting, vo.ClassPriority, custom))
	})
}

func TestSortWaiting(t *testing.T) {
	base := time.Now()

	regularEarly := makeWaiting(t, 1, vo.ClassRegular, base)
	regularLate := makeWaiting(t, 2, vo.ClassRegular, base.Add(10*time.Minute))
	priorityLate := makeWaiting(t, 3, vo.ClassPriority, base.Add(20*time.Minute))
	priorityEarly := makeWaiting(t, 4, vo.ClassPriority, base.Add(5*time.Minute))

	sorted := SortWaiting([]*Ticket{regularEarly, regularLate, priorityLate, priorityEarly})

	ids := make([]uint, 0, len(sorted))
	for _, ticket := range sorted {
		ids = append(ids, ticket.ID())
	}
	// Priority before regular, then issue order within each class.
	assert.Equal(t, []uint{4, 3, 1, 2}, ids)
}

func TestSortWaiting_IDTiebreak(t *testing.T) {
	base := time.Now()
	a := makeWaiting(t, 9, vo.ClassRegular, base)
	b := makeWaiting(t, 3, vo.ClassRegular, base)

	sorted := SortWaiting([]*Ticket{a, b})
	assert.Equal(t, uint(3), sorted[0].ID())
	assert.Equal(t, uint(9), sorted[1].ID())
}

func TestNextTicket(t *testing.T) {
	base := time.Now()

	t.Run("nothing waiting", func(t *testing.T) {
		assert.Nil(t, NextTicket(nil))

		serving := makeWaiting(t, 1, vo.ClassRegular, base)
		require.NoError(t, serving.MarkServing(time.Time{}))
		assert.Nil(t, NextTicket([]*Ticket{serving}))
	})

	t.Run("earliest priority wins over earlier regular", func(t *testing.T) {
		tickets := []*Ticket{
			makeWaiting(t, 1, vo.ClassRegular, base),
			makeWaiting(t, 2, vo.ClassPriority, base.Add(time.Hour)),
		}
		next := NextTicket(tickets)
		require.NotNil(t, next)
		assert.Equal(t, uint(2), next.ID())
	})

	t.Run("issue order within class", func(t *testing.T) {
		tickets := []*Ticket{
			makeWaiting(t, 1, vo.ClassRegular, base.Add(time.Minute)),
			makeWaiting(t, 2, vo.ClassRegular, base),
		}
		next := NextTicket(tickets)
		require.NotNil(t, next)
		assert.Equal(t, uint(2), next.ID())
	})

	t.Run("agrees with sort order", func(t *testing.T) {
		tickets := []*Ticket{
			makeWaiting(t, 5, vo.ClassRegular, base),
			makeWaiting(t, 6, vo.ClassPriority, base.Add(time.Minute)),
			makeWaiting(t, 7, vo.ClassPriority, base.Add(2*time.Minute)),
		}
		next := NextTicket(tickets)
		sorted := SortWaiting(tickets)
		assert.Equal(t, sorted[0].ID(), next.ID())
	})
}

func TestDisplayNumber(t *testing.T) {
	assert.Equal(t, "1001", DisplayNumber(vo.ClassRegular, 1001))
	assert.Equal(t, "1002", DisplayNumber(vo.ClassRegular, 1002))
	assert.Equal(t, "P01", DisplayNumber(vo.ClassPriority, 1))
	assert.Equal(t, "P12", DisplayNumber(vo.ClassPriority, 12))
	assert.Equal(t, "P100", DisplayNumber(vo.ClassPriority, 100))
}
