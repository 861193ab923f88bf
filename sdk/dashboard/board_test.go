package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTicket(id uint, class, status string, weight, wait int, issuedAt time.Time) Ticket {
	return Ticket{
		ID:                   id,
		Number:               "1001",
		ServiceClass:         class,
		Status:               status,
		PriorityWeight:       weight,
		EstimatedWaitMinutes: wait,
		IssuedAt:             issuedAt,
	}
}

func boardWith(tickets ...Ticket) *Board {
	return &Board{tickets: tickets}
}

func TestBoard_Waiting_ServeOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	board := boardWith(
		newTicket(1, ClassRegular, StatusWaiting, 0, 16, base),
		newTicket(2, ClassRegular, StatusWaiting, 0, 24, base.Add(5*time.Minute)),
		newTicket(3, ClassPriority, StatusWaiting, 1, 5, base.Add(10*time.Minute)),
		newTicket(4, ClassRegular, StatusCompleted, 0, 8, base.Add(-time.Hour)),
	)

	waiting := board.Waiting()

	require.Len(t, waiting, 3)
	assert.Equal(t, uint(3), waiting[0].ID)
	assert.Equal(t, uint(1), waiting[1].ID)
	assert.Equal(t, uint(2), waiting[2].ID)
}

func TestBoard_Waiting_IDTiebreak(t *testing.T) {
	issued := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	board := boardWith(
		newTicket(5, ClassRegular, StatusWaiting, 0, 8, issued),
		newTicket(2, ClassRegular, StatusWaiting, 0, 8, issued),
	)

	waiting := board.Waiting()

	require.Len(t, waiting, 2)
	assert.Equal(t, uint(2), waiting[0].ID)
	assert.Equal(t, uint(5), waiting[1].ID)
}

func TestBoard_Stats(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	board := boardWith(
		newTicket(1, ClassRegular, StatusWaiting, 0, 8, base),
		newTicket(2, ClassRegular, StatusCompleted, 0, 8, base),
		newTicket(3, ClassPriority, StatusWaiting, 1, 5, base),
		newTicket(4, ClassPriority, StatusNoShow, 1, 5, base),
	)

	stats := board.Stats()

	assert.Equal(t, ClassStats{Waiting: 1, Completed: 1}, stats[ClassRegular])
	assert.Equal(t, ClassStats{Waiting: 1, Completed: 0}, stats[ClassPriority])
	assert.Equal(t, 1, board.NoShowCount())
}

func TestBoard_Serving(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	board := boardWith(
		newTicket(1, ClassRegular, StatusWaiting, 0, 8, base),
	)
	assert.Nil(t, board.Serving())

	board = boardWith(
		newTicket(1, ClassRegular, StatusWaiting, 0, 8, base),
		newTicket(2, ClassPriority, StatusServing, 1, 5, base),
	)

	serving := board.Serving()
	require.NotNil(t, serving)
	assert.Equal(t, uint(2), serving.ID)
}

func TestBoard_AverageWait(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	board := boardWith()
	assert.Equal(t, time.Duration(0), board.AverageWait())

	board = boardWith(
		newTicket(1, ClassRegular, StatusWaiting, 0, 10, base),
		newTicket(2, ClassRegular, StatusWaiting, 0, 20, base),
		newTicket(3, ClassRegular, StatusCompleted, 0, 99, base),
	)
	assert.Equal(t, 15*time.Minute, board.AverageWait())
}

// queueServer is a minimal in-memory API used to verify that board
// mutations go through the server and refetch the mirrored list.
type queueServer struct {
	tickets []Ticket
	nextID  uint
}

func (s *queueServer) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /queue", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, s.tickets, "")
	})

	mux.HandleFunc("POST /queue", func(w http.ResponseWriter, r *http.Request) {
		var req IssueRequest
		json.NewDecoder(r.Body).Decode(&req)

		weight := 0
		if req.ServiceClass == ClassPriority {
			weight = 1
		}
		s.nextID++
		ticket := newTicket(s.nextID, req.ServiceClass, StatusWaiting, weight, 8, time.Now().UTC())
		s.tickets = append(s.tickets, ticket)

		writeEnvelope(w, http.StatusCreated, ticket, "Ticket issued successfully")
	})

	mux.HandleFunc("POST /queue/next", func(w http.ResponseWriter, r *http.Request) {
		for i := range s.tickets {
			if s.tickets[i].Status == StatusWaiting {
				s.tickets[i].Status = StatusServing
				writeEnvelope(w, http.StatusOK, s.tickets[i], "Ticket called")
				return
			}
		}
		writeEnvelope(w, http.StatusOK, nil, "No waiting tickets")
	})

	mux.HandleFunc("DELETE /queue/reset", func(w http.ResponseWriter, r *http.Request) {
		deleted := len(s.tickets)
		s.tickets = nil
		writeEnvelope(w, http.StatusOK, ResetResult{Deleted: int64(deleted)}, "Queue reset")
	})

	return mux
}

func writeEnvelope(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func TestBoard_RefetchesAfterMutation(t *testing.T) {
	server := &queueServer{}
	srv := httptest.NewServer(server.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithToken("test-token"))
	board := NewBoard(client)
	ctx := context.Background()

	issued, err := board.Issue(ctx, IssueRequest{ServiceClass: ClassRegular})
	require.NoError(t, err)
	require.NotNil(t, issued)
	require.Len(t, board.Tickets(), 1)
	assert.Equal(t, StatusWaiting, board.Tickets()[0].Status)

	called, err := board.CallNext(ctx)
	require.NoError(t, err)
	require.NotNil(t, called)
	assert.Equal(t, issued.ID, called.ID)

	// Board mirrors the server-side transition, not a local patch.
	require.NotNil(t, board.Serving())
	assert.Empty(t, board.Waiting())

	result, err := board.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Deleted)
	assert.Empty(t, board.Tickets())
}

func TestBoard_CallNext_EmptyQueue(t *testing.T) {
	server := &queueServer{}
	srv := httptest.NewServer(server.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithToken("test-token"))
	board := NewBoard(client)

	ticket, err := board.CallNext(context.Background())
	require.NoError(t, err)
	assert.Nil(t, ticket)
}
