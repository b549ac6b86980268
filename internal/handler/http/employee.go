package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/infinithree/absensi-backend-go/internal/domain/auth"
	"github.com/infinithree/absensi-backend-go/internal/domain/user"
	"github.com/infinithree/absensi-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Profile(w http.ResponseWriter, r *http.Request)
	UpdateOwnName(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	userService user.UserService
}

func NewEmployeeHandler(userService user.UserService) EmployeeHandler {
	return &EmployeeHandlerImpl{userService: userService}
}

// Profile implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	userID, _, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateOwnName implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateOwnName(w http.ResponseWriter, r *http.Request) {
	userID, _, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var nameReq user.UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&nameReq); err != nil {
		slog.Error("UpdateOwnName decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.userService.UpdateOwnName(r.Context(), userID, nameReq)
	if err != nil {
		slog.Error("UpdateOwnName service error", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Name updated", resp)
}

// List implements EmployeeHandler. SuperAdmins see every account, the admin
// team sees the Staff directory.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, role, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var (
		resp []user.UserResponse
		err  error
	)
	if role == user.RoleSuperAdmin {
		resp, err = h.userService.ListAll(r.Context())
	} else {
		resp, err = h.userService.ListStaff(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.userService.CreateStaff(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "email", createReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", resp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "userID")

	resp, err := h.userService.UpdateStaff(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update employee service error", "target_user_id", updateReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", resp)
}
