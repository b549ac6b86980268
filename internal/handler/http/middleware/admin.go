package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/infinithree/absensi-backend-go/internal/domain/auth"
	"github.com/infinithree/absensi-backend-go/internal/domain/user"
	"github.com/infinithree/absensi-backend-go/internal/handler/http/response"
)

// AdminTeamOnly admits SuperAdmins and Staff on the Admin team. This is the
// gate in front of request processing, the directory and reports.
func AdminTeamOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		team, _ := claims["team"].(string)

		u := user.User{Role: user.Role(role), Team: user.Team(team)}
		if !u.IsAdminTeam() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SuperAdminOnly gates company settings and destructive operations.
func SuperAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		if user.Role(role) != user.RoleSuperAdmin {
			response.HandleError(w, user.ErrSuperAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
