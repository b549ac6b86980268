package http

import (
	"net/http"

	"github.com/infinithree/absensi-backend-go/internal/domain/auth"
	"github.com/infinithree/absensi-backend-go/internal/domain/dashboard"
	"github.com/infinithree/absensi-backend-go/internal/domain/user"
	"github.com/infinithree/absensi-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Stats implements DashboardHandler.
func (h *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	_, role, _, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.dashboardService.Stats(r.Context(), role == user.RoleSuperAdmin)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
