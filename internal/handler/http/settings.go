package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/infinithree/absensi-backend-go/internal/domain/settings"
	"github.com/infinithree/absensi-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetShiftSettings(w http.ResponseWriter, r *http.Request)
	UpdateShiftSettings(w http.ResponseWriter, r *http.Request)
	GetCompanySettings(w http.ResponseWriter, r *http.Request)
	UpdateCompanyName(w http.ResponseWriter, r *http.Request)
	AddRole(w http.ResponseWriter, r *http.Request)
	RemoveRole(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// GetShiftSettings implements SettingsHandler.
func (h *SettingsHandlerImpl) GetShiftSettings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.settingsService.GetShiftSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateShiftSettings implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdateShiftSettings(w http.ResponseWriter, r *http.Request) {
	var updateReq settings.UpdateShiftSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateShiftSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.settingsService.UpdateShiftSettings(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateShiftSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift settings updated", resp)
}

// GetCompanySettings implements SettingsHandler.
func (h *SettingsHandlerImpl) GetCompanySettings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.settingsService.GetCompanySettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateCompanyName implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdateCompanyName(w http.ResponseWriter, r *http.Request) {
	var updateReq settings.UpdateCompanyNameRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateCompanyName decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.settingsService.UpdateCompanyName(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateCompanyName service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company name updated", resp)
}

// AddRole implements SettingsHandler.
func (h *SettingsHandlerImpl) AddRole(w http.ResponseWriter, r *http.Request) {
	var roleReq settings.RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&roleReq); err != nil {
		slog.Error("AddRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.settingsService.AddRole(r.Context(), roleReq)
	if err != nil {
		slog.Error("AddRole service error", "role", roleReq.Role, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Role added", resp)
}

// RemoveRole implements SettingsHandler.
func (h *SettingsHandlerImpl) RemoveRole(w http.ResponseWriter, r *http.Request) {
	var roleReq settings.RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&roleReq); err != nil {
		slog.Error("RemoveRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.settingsService.RemoveRole(r.Context(), roleReq)
	if err != nil {
		slog.Error("RemoveRole service error", "role", roleReq.Role, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role removed", resp)
}
