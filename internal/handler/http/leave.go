package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/infinithree/absensi-backend-go/internal/domain/auth"
	"github.com/infinithree/absensi-backend-go/internal/domain/request"
	"github.com/infinithree/absensi-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService request.LeaveRequestService
}

func NewLeaveHandler(leaveService request.LeaveRequestService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq request.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Create leave request service error", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.leaveService.ListMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListAll implements LeaveHandler.
func (h *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Approve)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Reject)
}

func (h *LeaveHandlerImpl) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id string, decidedBy string) (request.LeaveRequestResponse, error),
) {
	deciderID, _, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	id := chi.URLParam(r, "requestID")
	if id == "" {
		response.BadRequest(w, "Missing request id", nil)
		return
	}

	resp, err := fn(r.Context(), id, deciderID)
	if err != nil {
		slog.Error("Leave decision service error", "request_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+resp.Status, resp)
}
