package dashboard

import (
	"context"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/domain/dashboard"
	"github.com/infinithree/absensi-backend-go/internal/domain/request"
	"github.com/infinithree/absensi-backend-go/internal/domain/user"
)

const recentRequestLimit = 3

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	userRepo  user.UserRepository
	leaveRepo request.LeaveRequestRepository
	now       func() time.Time
}

func NewDashboardService(
	dashboardRepository dashboard.DashboardRepository,
	userRepository user.UserRepository,
	leaveRequestRepository request.LeaveRequestRepository,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepository,
		userRepo:            userRepository,
		leaveRepo:           leaveRequestRepository,
		now:                 time.Now,
	}
}

// Stats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Stats(ctx context.Context, includeAllUsers bool) (dashboard.Stats, error) {
	var stats dashboard.Stats
	var err error

	if includeAllUsers {
		stats.TotalStaff, err = s.userRepo.CountAll(ctx)
	} else {
		stats.TotalStaff, err = s.userRepo.CountStaff(ctx)
	}
	if err != nil {
		return dashboard.Stats{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	stats.PresentToday, err = s.DashboardRepository.CountPresentOn(ctx, today)
	if err != nil {
		return dashboard.Stats{}, err
	}

	stats.PendingRequests, err = s.leaveRepo.CountPending(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	pending, err := s.leaveRepo.ListPending(ctx, recentRequestLimit)
	if err != nil {
		return dashboard.Stats{}, err
	}

	stats.RecentRequests = make([]request.LeaveRequestResponse, 0, len(pending))
	for _, r := range pending {
		stats.RecentRequests = append(stats.RecentRequests, request.ToResponse(r))
	}

	return stats, nil
}
