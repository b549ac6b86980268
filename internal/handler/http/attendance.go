package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/infinithree/absensi-backend-go/internal/domain/attendance"
	"github.com/infinithree/absensi-backend-go/internal/domain/auth"
	"github.com/infinithree/absensi-backend-go/internal/handler/http/response"
)

const maxClockInBodySize = 12 << 20 // selfie limit plus form overhead

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	ResetToday(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler. Multipart form: the selfie photo
// under "photo".
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID, _, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxClockInBodySize)
	if err := r.ParseMultipartForm(maxClockInBodySize); err != nil {
		slog.Error("ClockIn multipart parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	clockInReq := attendance.ClockInRequest{UserID: userID}
	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		clockInReq.File = file
		clockInReq.FileHeader = header
	}

	resp, err := h.attendanceService.ClockIn(r.Context(), clockInReq)
	if err != nil {
		slog.Error("ClockIn service error", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", resp)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID, _, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.attendanceService.ClockOut(r.Context(), userID)
	if err != nil {
		slog.Error("ClockOut service error", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	userID, _, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.attendanceService.Today(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// History implements AttendanceHandler.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	userID, _, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	resp, err := h.attendanceService.History(r.Context(), userID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ResetToday implements AttendanceHandler. SuperAdmin only, enforced by the
// route middleware.
func (h *AttendanceHandlerImpl) ResetToday(w http.ResponseWriter, r *http.Request) {
	targetUserID := chi.URLParam(r, "userID")
	if targetUserID == "" {
		response.BadRequest(w, "Missing user id", nil)
		return
	}

	if err := h.attendanceService.ResetToday(r.Context(), targetUserID); err != nil {
		slog.Error("ResetToday service error", "target_user_id", targetUserID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance reset by admin", "target_user_id", targetUserID)
	response.SuccessWithMessage(w, "Attendance reset", nil)
}
