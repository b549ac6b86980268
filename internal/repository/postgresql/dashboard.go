package postgresql

import (
	"context"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/domain/dashboard"
	"github.com/infinithree/absensi-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) CountPresentOn(ctx context.Context, workDate time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(DISTINCT user_id) FROM attendances WHERE work_date = $1`,
		workDate,
	).Scan(&count)
	return count, err
}
