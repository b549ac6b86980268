package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	// CountPresentOn counts distinct users with an attendance record for
	// the given work date.
	CountPresentOn(ctx context.Context, workDate time.Time) (int64, error)
}
