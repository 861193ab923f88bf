package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waitline/internal/application/queue/usecases"
	"waitline/internal/interfaces/http/middleware"
	"waitline/internal/shared/logger"
	"waitline/internal/shared/utils"
)

type QueueHandler struct {
	issueTicketUC  usecases.IssueTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	callNextUC     usecases.CallNextExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	getCountersUC  usecases.GetCountersExecutor
	resetQueueUC   usecases.ResetQueueExecutor
	logger         logger.Interface
}

func NewQueueHandler(
	issueTicketUC usecases.IssueTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	callNextUC usecases.CallNextExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getCountersUC usecases.GetCountersExecutor,
	resetQueueUC usecases.ResetQueueExecutor,
) *QueueHandler {
	return &QueueHandler{
		issueTicketUC:  issueTicketUC,
		listTicketsUC:  listTicketsUC,
		updateTicketUC: updateTicketUC,
		callNextUC:     callNextUC,
		deleteTicketUC: deleteTicketUC,
		getCountersUC:  getCountersUC,
		resetQueueUC:   resetQueueUC,
		logger:         logger.NewLogger(),
	}
}

// IssueTicket handles POST /queue
func (h *QueueHandler) IssueTicket(c *gin.Context) {
	var req IssueTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for issue ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.issueTicketUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket issued successfully")
}

// ListTickets handles GET /queue
func (h *QueueHandler) ListTickets(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{OwnerID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Tickets)
}

// UpdateTicket handles PUT /queue/:id
func (h *QueueHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// CallNext handles POST /queue/next
func (h *QueueHandler) CallNext(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.callNextUC.Execute(c.Request.Context(), usecases.CallNextCommand{OwnerID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Ticket == nil {
		utils.SuccessResponse(c, http.StatusOK, "No waiting tickets", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket called", result.Ticket)
}

// DeleteTicket handles DELETE /queue/:id
func (h *QueueHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.UserIDFromContext(c)

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID:     ticketID,
		ActingUserID: userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted", nil)
}

// GetCounters handles GET /queue/counters
func (h *QueueHandler) GetCounters(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.getCountersUC.Execute(c.Request.Context(), usecases.GetCountersQuery{OwnerID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ResetQueue handles DELETE /queue/reset
func (h *QueueHandler) ResetQueue(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	result, err := h.resetQueueUC.Execute(c.Request.Context(), usecases.ResetQueueCommand{OwnerID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Queue reset", gin.H{"deleted": result.Deleted})
}
