package queue

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	queuedto "waitline/internal/application/queue/dto"
	"waitline/internal/application/queue/usecases"
	"waitline/internal/interfaces/http/handlers/testutil"
	"waitline/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockIssueTicketUC struct {
	result *queuedto.TicketDTO
	err    error
	gotCmd *usecases.IssueTicketCommand
}

func (m *mockIssueTicketUC) Execute(_ context.Context, cmd usecases.IssueTicketCommand) (*queuedto.TicketDTO, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, _ usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *queuedto.TicketDTO
	err    error
	gotCmd *usecases.UpdateTicketCommand
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, cmd usecases.UpdateTicketCommand) (*queuedto.TicketDTO, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockCallNextUC struct {
	result *usecases.CallNextResult
	err    error
}

func (m *mockCallNextUC) Execute(_ context.Context, _ usecases.CallNextCommand) (*usecases.CallNextResult, error) {
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err    error
	gotCmd *usecases.DeleteTicketCommand
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, cmd usecases.DeleteTicketCommand) error {
	m.gotCmd = &cmd
	return m.err
}

type mockGetCountersUC struct {
	result *usecases.GetCountersResult
	err    error
}

func (m *mockGetCountersUC) Execute(_ context.Context, _ usecases.GetCountersQuery) (*usecases.GetCountersResult, error) {
	return m.result, m.err
}

type mockResetQueueUC struct {
	result *usecases.ResetQueueResult
	err    error
}

func (m *mockResetQueueUC) Execute(_ context.Context, _ usecases.ResetQueueCommand) (*usecases.ResetQueueResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	issueTicketUC  usecases.IssueTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	callNextUC     usecases.CallNextExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	getCountersUC  usecases.GetCountersExecutor
	resetQueueUC   usecases.ResetQueueExecutor
}

func newTestQueueHandler(deps testDeps) *QueueHandler {
	return NewQueueHandler(
		deps.issueTicketUC,
		deps.listTicketsUC,
		deps.updateTicketUC,
		deps.callNextUC,
		deps.deleteTicketUC,
		deps.getCountersUC,
		deps.resetQueueUC,
	)
}

func sampleTicketDTO() *queuedto.TicketDTO {
	return &queuedto.TicketDTO{
		ID:                   1,
		Number:               "1001",
		ServiceClass:         "regular",
		Status:               "waiting",
		EstimatedWaitMinutes: 16,
		IssuedAt:             time.Now().UTC(),
	}
}

// =====================================================================
// IssueTicket
// =====================================================================

func TestQueueHandler_IssueTicket_Success(t *testing.T) {
	mockUC := &mockIssueTicketUC{result: sampleTicketDTO()}
	handler := newTestQueueHandler(testDeps{issueTicketUC: mockUC})

	reqBody := IssueTicketRequest{ServiceClass: "regular"}
	c, w := testutil.NewTestContext(http.MethodPost, "/queue", reqBody)
	testutil.SetAuthContext(c, 7)

	handler.IssueTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockUC.gotCmd)
	assert.Equal(t, uint(7), mockUC.gotCmd.OwnerID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestQueueHandler_IssueTicket_ClientNumberForwarded(t *testing.T) {
	mockUC := &mockIssueTicketUC{result: sampleTicketDTO()}
	handler := newTestQueueHandler(testDeps{issueTicketUC: mockUC})

	number := "9999"
	reqBody := IssueTicketRequest{ServiceClass: "regular", Number: &number}
	c, w := testutil.NewTestContext(http.MethodPost, "/queue", reqBody)
	testutil.SetAuthContext(c, 7)

	handler.IssueTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockUC.gotCmd)
	require.NotNil(t, mockUC.gotCmd.Number)
	assert.Equal(t, "9999", *mockUC.gotCmd.Number)
}

func TestQueueHandler_IssueTicket_InvalidClass(t *testing.T) {
	handler := newTestQueueHandler(testDeps{})

	reqBody := map[string]string{"service_class": "vip"}
	c, w := testutil.NewTestContext(http.MethodPost, "/queue", reqBody)
	testutil.SetAuthContext(c, 7)

	handler.IssueTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueueHandler_IssueTicket_MissingBody(t *testing.T) {
	handler := newTestQueueHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/queue", nil)
	testutil.SetAuthContext(c, 7)

	handler.IssueTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// ListTickets
// =====================================================================

func TestQueueHandler_ListTickets_Success(t *testing.T) {
	mockUC := &mockListTicketsUC{
		result: &usecases.ListTicketsResult{
			Tickets: []*queuedto.TicketDTO{sampleTicketDTO()},
			Total:   1,
		},
	}
	handler := newTestQueueHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/queue", nil)
	testutil.SetAuthContext(c, 7)

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

// =====================================================================
// UpdateTicket
// =====================================================================

func TestQueueHandler_UpdateTicket_Success(t *testing.T) {
	dto := sampleTicketDTO()
	dto.Status = "serving"
	mockUC := &mockUpdateTicketUC{result: dto}
	handler := newTestQueueHandler(testDeps{updateTicketUC: mockUC})

	status := "serving"
	reqBody := UpdateTicketRequest{Status: &status}
	c, w := testutil.NewTestContext(http.MethodPut, "/queue/1", reqBody)
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotCmd)
	assert.Equal(t, uint(1), mockUC.gotCmd.TicketID)
	assert.Equal(t, uint(7), mockUC.gotCmd.ActingUserID)
}

func TestQueueHandler_UpdateTicket_Forbidden(t *testing.T) {
	mockUC := &mockUpdateTicketUC{err: errors.NewForbiddenError("ticket belongs to another user")}
	handler := newTestQueueHandler(testDeps{updateTicketUC: mockUC})

	status := "serving"
	reqBody := UpdateTicketRequest{Status: &status}
	c, w := testutil.NewTestContext(http.MethodPut, "/queue/1", reqBody)
	testutil.SetAuthContext(c, 8)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestQueueHandler_UpdateTicket_InvalidID(t *testing.T) {
	handler := newTestQueueHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPut, "/queue/abc", nil)
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "abc")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// CallNext
// =====================================================================

func TestQueueHandler_CallNext_Success(t *testing.T) {
	dto := sampleTicketDTO()
	dto.Status = "serving"
	mockUC := &mockCallNextUC{result: &usecases.CallNextResult{Ticket: dto}}
	handler := newTestQueueHandler(testDeps{callNextUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/queue/next", nil)
	testutil.SetAuthContext(c, 7)

	handler.CallNext(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestQueueHandler_CallNext_EmptyQueue(t *testing.T) {
	mockUC := &mockCallNextUC{result: &usecases.CallNextResult{}}
	handler := newTestQueueHandler(testDeps{callNextUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/queue/next", nil)
	testutil.SetAuthContext(c, 7)

	handler.CallNext(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "No waiting tickets", resp.Message)
}

// =====================================================================
// DeleteTicket
// =====================================================================

func TestQueueHandler_DeleteTicket_Success(t *testing.T) {
	mockUC := &mockDeleteTicketUC{}
	handler := newTestQueueHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/queue/3", nil)
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotCmd)
	assert.Equal(t, uint(3), mockUC.gotCmd.TicketID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Ticket deleted", resp.Message)
}

func TestQueueHandler_DeleteTicket_NotFound(t *testing.T) {
	mockUC := &mockDeleteTicketUC{err: errors.NewNotFoundError("ticket not found")}
	handler := newTestQueueHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/queue/3", nil)
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// GetCounters / ResetQueue
// =====================================================================

func TestQueueHandler_GetCounters_Success(t *testing.T) {
	mockUC := &mockGetCountersUC{result: &usecases.GetCountersResult{Regular: 1003, Priority: 2}}
	handler := newTestQueueHandler(testDeps{getCountersUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/queue/counters", nil)
	testutil.SetAuthContext(c, 7)

	handler.GetCounters(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.JSONEq(t, `{"regular":1003,"priority":2}`, string(resp.Data))
}

func TestQueueHandler_ResetQueue_Success(t *testing.T) {
	mockUC := &mockResetQueueUC{result: &usecases.ResetQueueResult{Deleted: 4}}
	handler := newTestQueueHandler(testDeps{resetQueueUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/queue/reset", nil)
	testutil.SetAuthContext(c, 7)

	handler.ResetQueue(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}
