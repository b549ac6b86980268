package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/infinithree/absensi-backend-go/internal/domain/user"
)

// identityFromRequest extracts the authenticated identity from the verified
// token. AuthRequired has already run, so a failure here is an internal bug,
// not a client error.
func identityFromRequest(r *http.Request) (userID string, role user.Role, team user.Team, ok bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", "", false
	}

	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", "", false
	}

	roleStr, _ := claims["role"].(string)
	teamStr, _ := claims["team"].(string)
	return userID, user.Role(roleStr), user.Team(teamStr), true
}
