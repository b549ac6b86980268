package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/infinithree/absensi-backend-go/internal/domain/request"
	"github.com/infinithree/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `lr.id, lr.user_id, u.name, lr.type, lr.start_date, lr.end_date, lr.reason, lr.status, lr.decided_by, lr.decided_at, lr.created_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) request.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (request.LeaveRequest, error) {
	var lr request.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.UserID,
		&lr.UserName,
		&lr.Type,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Reason,
		&lr.Status,
		&lr.DecidedBy,
		&lr.DecidedAt,
		&lr.CreatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req request.LeaveRequest) (request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	insertQuery := `
		WITH inserted AS (
			INSERT INTO leave_requests (id, user_id, type, start_date, end_date, reason, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT lr.id, lr.user_id, u.name, lr.type, lr.start_date, lr.end_date, lr.reason, lr.status, lr.decided_by, lr.decided_at, lr.created_at
		FROM inserted lr
		JOIN users u ON u.id = lr.user_id
	`

	created, err := scanLeaveRequest(q.QueryRow(ctx, insertQuery,
		req.ID, req.UserID, req.Type, req.StartDate, req.EndDate, req.Reason, request.StatusPending,
	))
	if err != nil {
		return request.LeaveRequest{}, err
	}

	return created, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.LeaveRequest{}, request.ErrRequestNotFound
		}
		return request.LeaveRequest{}, err
	}

	return lr, nil
}

func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.user_id = $1
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context, limit int) ([]request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.status = $1
		ORDER BY lr.created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, request.StatusPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, request.StatusPending).Scan(&count)
	return count, err
}

// UpdateStatus decides a pending request. The status guard in the WHERE
// clause makes the transition atomic: a request decided by two admins at
// once yields exactly one winner, the loser gets ErrRequestAlreadyProcessed.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.Status, decidedBy string) (request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		WITH updated AS (
			UPDATE leave_requests
			SET status = $1, decided_by = $2, decided_at = NOW()
			WHERE id = $3 AND status = $4
			RETURNING *
		)
		SELECT lr.id, lr.user_id, u.name, lr.type, lr.start_date, lr.end_date, lr.reason, lr.status, lr.decided_by, lr.decided_at, lr.created_at
		FROM updated lr
		JOIN users u ON u.id = lr.user_id
	`

	updated, err := scanLeaveRequest(q.QueryRow(ctx, updateQuery, status, decidedBy, id, request.StatusPending))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return request.LeaveRequest{}, err
	}

	// No pending row matched: either the request does not exist or it was
	// already decided.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
		return request.LeaveRequest{}, err
	}
	if exists {
		return request.LeaveRequest{}, request.ErrRequestAlreadyProcessed
	}
	return request.LeaveRequest{}, request.ErrRequestNotFound
}

func collectLeaveRequests(rows pgx.Rows) ([]request.LeaveRequest, error) {
	requests := make([]request.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}
