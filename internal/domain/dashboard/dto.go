package dashboard

import (
	"github.com/infinithree/absensi-backend-go/internal/domain/request"
)

// Stats backs the admin and super-admin dashboard cards.
type Stats struct {
	TotalStaff      int64                          `json:"total_staff"`
	PresentToday    int64                          `json:"present_today"`
	PendingRequests int64                          `json:"pending_requests"`
	RecentRequests  []request.LeaveRequestResponse `json:"recent_requests"`
}
