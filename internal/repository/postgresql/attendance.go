package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/infinithree/absensi-backend-go/internal/domain/attendance"
	"github.com/infinithree/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `a.id, a.user_id, a.work_date, a.clock_in, a.clock_out, a.status, a.selfie_url, a.created_at, a.updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.WorkDate,
		&a.ClockIn,
		&a.ClockOut,
		&a.Status,
		&a.SelfieURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Create inserts the day's record. ON CONFLICT DO NOTHING plus the unique
// index on (user_id, work_date) makes the insert race-safe: the loser of a
// two-device race sees zero returned rows and gets ErrAlreadyClockedIn.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	insertQuery := `
		INSERT INTO attendances (id, user_id, work_date, clock_in, status, selfie_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, work_date) DO NOTHING
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, insertQuery,
		record.ID, record.UserID, record.WorkDate, record.ClockIn, record.Status, record.SelfieURL,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, err
	}

	return created, nil
}

func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, workDate time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.user_id = $1 AND a.work_date = $2`

	record, err := scanAttendance(q.QueryRow(ctx, query, userID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// SetClockOut stamps clock_out only where it is still NULL, so a repeated
// clock-out can never move the original timestamp.
func (r *attendanceRepositoryImpl) SetClockOut(ctx context.Context, userID string, workDate time.Time, clockOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE attendances a
		SET clock_out = $1, updated_at = NOW()
		WHERE a.user_id = $2 AND a.work_date = $3 AND a.clock_out IS NULL
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, updateQuery, clockOut, userID, workDate))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, err
	}

	// Distinguish "already clocked out" from "never clocked in".
	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM attendances WHERE user_id = $1 AND work_date = $2)`
	if err := q.QueryRow(ctx, checkQuery, userID, workDate).Scan(&exists); err != nil {
		return attendance.Attendance{}, err
	}
	if exists {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}
	return attendance.Attendance{}, attendance.ErrNotClockedIn
}

func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1
		ORDER BY a.clock_in DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func (r *attendanceRepositoryImpl) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1 AND a.clock_in >= $2 AND a.clock_in < $3
		ORDER BY a.clock_in ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func (r *attendanceRepositoryImpl) DeleteByUserAndDate(ctx context.Context, userID string, workDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE user_id = $1 AND work_date = $2`, userID, workDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepositoryImpl) ListDanglingBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.clock_out IS NULL AND a.work_date < $1
		ORDER BY a.work_date ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
