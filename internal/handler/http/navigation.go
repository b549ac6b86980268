package http

import (
	"net/http"

	"github.com/infinithree/absensi-backend-go/internal/domain/auth"
	"github.com/infinithree/absensi-backend-go/internal/domain/user"
	"github.com/infinithree/absensi-backend-go/internal/handler/http/response"
)

type NavigationHandler interface {
	Menu(w http.ResponseWriter, r *http.Request)
}

type NavigationHandlerImpl struct{}

func NewNavigationHandler() NavigationHandler {
	return &NavigationHandlerImpl{}
}

type navigationResponse struct {
	Menu user.Menu `json:"menu"`
	Page string    `json:"page"`
}

// Menu implements NavigationHandler. The optional "page" query parameter is
// resolved against the session's menu; anything outside it falls back to the
// menu's home dashboard.
func (h *NavigationHandlerImpl) Menu(w http.ResponseWriter, r *http.Request) {
	_, role, team, ok := identityFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	menu := user.ResolveMenu(role, team)
	page := menu.Home
	if requested := r.URL.Query().Get("page"); requested != "" {
		page = user.ResolvePage(role, team, requested)
	}

	response.Success(w, navigationResponse{Menu: menu, Page: page})
}
