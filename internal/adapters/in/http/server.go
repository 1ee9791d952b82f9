// Package http exposes the fulfillment use cases over a REST API.
// Handlers translate between the wire format and the command/query layer;
// every business rule lives below this package.
package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/qc"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrder        commands.CreateOrderCommandHandler
	confirmPayment     commands.ConfirmPaymentCommandHandler
	acceptTask         commands.AcceptTaskCommandHandler
	declineTask        commands.DeclineTaskCommandHandler
	uploadDraft        commands.UploadDraftCommandHandler
	approveOrder       commands.ApproveOrderCommandHandler
	rejectOrder        commands.RejectOrderCommandHandler
	reassignWriter     commands.ReassignWriterCommandHandler
	advanceFulfillment commands.AdvanceFulfillmentCommandHandler
	cancelOrder        commands.CancelOrderCommandHandler
	holdOrder          commands.HoldOrderCommandHandler
	resumeOrder        commands.ResumeOrderCommandHandler
	refundOrder        commands.RefundOrderCommandHandler

	fetchTasks        queries.FetchTasksQueryHandler
	getPendingQCTasks queries.GetPendingQCTasksQueryHandler
	getWriterEarnings queries.GetWriterEarningsQueryHandler
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	ConfirmPayment     commands.ConfirmPaymentCommandHandler
	AcceptTask         commands.AcceptTaskCommandHandler
	DeclineTask        commands.DeclineTaskCommandHandler
	UploadDraft        commands.UploadDraftCommandHandler
	ApproveOrder       commands.ApproveOrderCommandHandler
	RejectOrder        commands.RejectOrderCommandHandler
	ReassignWriter     commands.ReassignWriterCommandHandler
	AdvanceFulfillment commands.AdvanceFulfillmentCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	HoldOrder          commands.HoldOrderCommandHandler
	ResumeOrder        commands.ResumeOrderCommandHandler
	RefundOrder        commands.RefundOrderCommandHandler

	FetchTasks        queries.FetchTasksQueryHandler
	GetPendingQCTasks queries.GetPendingQCTasksQueryHandler
	GetWriterEarnings queries.GetWriterEarningsQueryHandler
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createOrder:        handlers.CreateOrder,
		confirmPayment:     handlers.ConfirmPayment,
		acceptTask:         handlers.AcceptTask,
		declineTask:        handlers.DeclineTask,
		uploadDraft:        handlers.UploadDraft,
		approveOrder:       handlers.ApproveOrder,
		rejectOrder:        handlers.RejectOrder,
		reassignWriter:     handlers.ReassignWriter,
		advanceFulfillment: handlers.AdvanceFulfillment,
		cancelOrder:        handlers.CancelOrder,
		holdOrder:          handlers.HoldOrder,
		resumeOrder:        handlers.ResumeOrder,
		refundOrder:        handlers.RefundOrder,
		fetchTasks:         handlers.FetchTasks,
		getPendingQCTasks:  handlers.GetPendingQCTasks,
		getWriterEarnings:  handlers.GetWriterEarnings,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/payment-confirmation", s.ConfirmPayment)
	api.POST("/orders/:id/acceptance", s.AcceptTask)
	api.POST("/orders/:id/decline", s.DeclineTask)
	api.POST("/orders/:id/draft", s.UploadDraft)
	api.POST("/orders/:id/approval", s.ApproveOrder)
	api.POST("/orders/:id/rejection", s.RejectOrder)
	api.POST("/orders/:id/reassignment", s.ReassignWriter)
	api.POST("/orders/:id/fulfillment", s.AdvanceFulfillment)
	api.POST("/orders/:id/cancellation", s.CancelOrder)
	api.POST("/orders/:id/hold", s.HoldOrder)
	api.POST("/orders/:id/resumption", s.ResumeOrder)
	api.POST("/orders/:id/refund", s.RefundOrder)

	api.GET("/tasks", s.FetchTasks)
	api.GET("/qc/tasks", s.GetPendingQCTasks)
	api.GET("/earnings", s.GetWriterEarnings)
}

type lineItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	LineItems []lineItemRequest `json:"line_items"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request createOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	lineItems := make([]order.LineItem, 0, len(request.LineItems))
	for _, item := range request.LineItems {
		itemID, idErr := kernel.UUIDFromString(item.ItemID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		lineItem, itemErr := order.NewLineItem(itemID, item.Quantity)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		lineItems = append(lineItems, lineItem)
	}

	orderID := kernel.NewUUID()
	command, err := commands.NewCreateOrderCommand(orderID, actor, lineItems)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrder.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

// ConfirmPayment handles POST /api/v1/orders/:id/payment-confirmation.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	actor, orderID, err := s.requestIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewConfirmPaymentCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmPayment.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptTask handles POST /api/v1/orders/:id/acceptance.
func (s *Server) AcceptTask(ctx echo.Context) error {
	actor, orderID, err := s.requestIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewAcceptTaskCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptTask.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

// DeclineTask handles POST /api/v1/orders/:id/decline.
func (s *Server) DeclineTask(ctx echo.Context) error {
	actor, orderID, err := s.requestIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request reasonRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	command, err := commands.NewDeclineTaskCommand(orderID, actor, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.declineTask.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type uploadDraftRequest struct {
	FileURL string `json:"file_url"`
}

// UploadDraft handles POST /api/v1/orders/:id/draft.
func (s *Server) UploadDraft(ctx echo.Context) error {
	actor, orderID, err := s.requestIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request uploadDraftRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	command, err := commands.NewUploadDraftCommand(orderID, actor, request.FileURL)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.uploadDraft.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reviewRequest struct {
	Result       string   `json:"result"`
	PassedChecks []string `json:"passed_checks"`
	FailedChecks []string `json:"failed_checks"`
	Comments     string   `json:"comments"`
}

// ApproveOrder handles POST /api/v1/orders/:id/approval.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	actor, orderID, err := s.requestIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request reviewRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	command, err := commands.NewApproveOrderCommand(
		orderID,
		actor,
		qc.ChecklistFromNames(request.PassedChecks, request.FailedChecks),
		request.Comments,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.approveOrder.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/rejection.
func (s *Server) RejectOrder(ctx echo.Context) error {
	actor, orderID, err := s.requestIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request reviewRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	result, err := qc.ResultFromString(request.Result)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewRejectOrderCommand(
		orderID,
		actor,
		result,
		qc.ChecklistFromNames(request.PassedChecks, request.FailedChecks),
		request.Comments,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rejectOrder.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reassignRequest struct {
	WriterID string `json:"writer_id"`
	Reason   string `json:"reason"`
}

// ReassignWriter handles POST /api/v1/orders/:id/reassignment.
func (s *Server) ReassignWriter(ctx echo.Context) error {
	actor, orderID, err := s.requestIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request reassignRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	writerID, err := kernel.UUIDFromString(request.WriterID)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewReassignWriterCommand(orderID, actor, writerID, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.reassignWriter.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type advanceRequest struct {
	Stage string `json:"stage"`
}

// AdvanceFulfillment handles POST /api/v1/orders/:id/fulfillment.
func (s *Server) AdvanceFulfillment(ctx echo.Context) error {
	actor, orderID, err := s.requestIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request advanceRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	stage, err := commands.StageFromString(request.Stage)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewAdvanceFulfillmentCommand(orderID, actor, stage)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.advanceFulfillment.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancellation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.handleReasoned(ctx, func(orderID kernel.UUID, actor kernel.Actor, reason string) error {
		command, err := commands.NewCancelOrderCommand(orderID, actor, reason)
		if err != nil {
			return err
		}
		return s.cancelOrder.Handle(ctx.Request().Context(), command)
	})
}

// HoldOrder handles POST /api/v1/orders/:id/hold.
func (s *Server) HoldOrder(ctx echo.Context) error {
	return s.handleReasoned(ctx, func(orderID kernel.UUID, actor kernel.Actor, reason string) error {
		command, err := commands.NewHoldOrderCommand(orderID, actor, reason)
		if err != nil {
			return err
		}
		return s.holdOrder.Handle(ctx.Request().Context(), command)
	})
}

// ResumeOrder handles POST /api/v1/orders/:id/resumption.
func (s *Server) ResumeOrder(ctx echo.Context) error {
	actor, orderID, err := s.requestIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewResumeOrderCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.resumeOrder.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundOrder handles POST /api/v1/orders/:id/refund.
func (s *Server) RefundOrder(ctx echo.Context) error {
	return s.handleReasoned(ctx, func(orderID kernel.UUID, actor kernel.Actor, reason string) error {
		command, err := commands.NewRefundOrderCommand(orderID, actor, reason)
		if err != nil {
			return err
		}
		return s.refundOrder.Handle(ctx.Request().Context(), command)
	})
}

type taskResponse struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Units     int        `json:"units"`
	OfferedAt *time.Time `json:"offered_at,omitempty"`
}

// FetchTasks handles GET /api/v1/tasks?filter=assigned|available.
// The task list belongs to the acting writer; there is no way to read
// another writer's view.
func (s *Server) FetchTasks(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	filter, err := queries.TaskFilterFromString(ctx.QueryParam("filter"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewFetchTasksQuery(actor.ID(), filter)
	if err != nil {
		return respondError(ctx, err)
	}

	tasks, err := s.fetchTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = taskResponse{
			ID:        task.ID.String(),
			Status:    task.Status.String(),
			Units:     task.Units,
			OfferedAt: task.OfferedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type qcTaskResponse struct {
	ID          string `json:"id"`
	WriterID    string `json:"writer_id"`
	DraftURL    string `json:"draft_url"`
	ReworkCount int    `json:"rework_count"`
}

// GetPendingQCTasks handles GET /api/v1/qc/tasks.
func (s *Server) GetPendingQCTasks(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return respondError(ctx, err)
	}

	query := queries.NewGetPendingQCTasksQuery()

	tasks, err := s.getPendingQCTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]qcTaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = qcTaskResponse{
			ID:          task.ID.String(),
			WriterID:    task.WriterID.String(),
			DraftURL:    task.DraftURL,
			ReworkCount: task.ReworkCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type earningsRecordResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount_cents"`
	Status    string    `json:"status"`
	AccruedAt time.Time `json:"accrued_at"`
}

type earningsResponse struct {
	WriterID      string                   `json:"writer_id"`
	Records       []earningsRecordResponse `json:"records"`
	TotalEarned   int64                    `json:"total_earned_cents"`
	PendingPayout int64                    `json:"pending_payout_cents"`
}

// GetWriterEarnings handles GET /api/v1/earnings for the acting writer.
func (s *Server) GetWriterEarnings(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetWriterEarningsQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	ledger, err := s.getWriterEarnings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	records := make([]earningsRecordResponse, len(ledger.Records))
	for i, record := range ledger.Records {
		records[i] = earningsRecordResponse{
			ID:        record.ID.String(),
			OrderID:   record.OrderID.String(),
			Amount:    record.Amount.Cents(),
			Status:    record.Status.String(),
			AccruedAt: record.AccruedAt,
		}
	}

	return ctx.JSON(http.StatusOK, earningsResponse{
		WriterID:      ledger.WriterID.String(),
		Records:       records,
		TotalEarned:   ledger.TotalEarned.Cents(),
		PendingPayout: ledger.PendingPayout.Cents(),
	})
}

func (s *Server) requestIdentity(ctx echo.Context) (kernel.Actor, kernel.UUID, error) {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}

	return actor, orderID, nil
}

func (s *Server) handleReasoned(
	ctx echo.Context,
	run func(orderID kernel.UUID, actor kernel.Actor, reason string) error,
) error {
	actor, orderID, err := s.requestIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request reasonRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	if err = run(orderID, actor, request.Reason); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
