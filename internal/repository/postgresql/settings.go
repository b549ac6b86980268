package postgresql

import (
	"context"
	"errors"

	"github.com/infinithree/absensi-backend-go/internal/domain/settings"
	"github.com/infinithree/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Both settings are singletons stored as single fixed-id rows. A read on a
// fresh database falls back to the seeded defaults instead of erroring.
type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

func (r *settingsRepositoryImpl) GetShiftSettings(ctx context.Context) (settings.ShiftSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT morning_start, morning_end, afternoon_start, afternoon_end, grace_minutes, updated_at
		FROM shift_settings
		WHERE id = 1
	`

	var s settings.ShiftSettings
	err := q.QueryRow(ctx, query).Scan(
		&s.Morning.Start,
		&s.Morning.End,
		&s.Afternoon.Start,
		&s.Afternoon.End,
		&s.GraceMinutes,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.DefaultShiftSettings(), nil
		}
		return settings.ShiftSettings{}, err
	}

	return s, nil
}

func (r *settingsRepositoryImpl) SaveShiftSettings(ctx context.Context, s settings.ShiftSettings) error {
	q := GetQuerier(ctx, r.db)

	upsertQuery := `
		INSERT INTO shift_settings (id, morning_start, morning_end, afternoon_start, afternoon_end, grace_minutes, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE
		SET morning_start = EXCLUDED.morning_start,
			morning_end = EXCLUDED.morning_end,
			afternoon_start = EXCLUDED.afternoon_start,
			afternoon_end = EXCLUDED.afternoon_end,
			grace_minutes = EXCLUDED.grace_minutes,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, upsertQuery,
		s.Morning.Start, s.Morning.End, s.Afternoon.Start, s.Afternoon.End, s.GraceMinutes,
	)
	return err
}

func (r *settingsRepositoryImpl) GetCompanySettings(ctx context.Context) (settings.CompanySettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT name, roles, updated_at FROM company_settings WHERE id = 1`

	var s settings.CompanySettings
	err := q.QueryRow(ctx, query).Scan(&s.Name, &s.Roles, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.DefaultCompanySettings(), nil
		}
		return settings.CompanySettings{}, err
	}

	return s, nil
}

func (r *settingsRepositoryImpl) SaveCompanySettings(ctx context.Context, s settings.CompanySettings) error {
	q := GetQuerier(ctx, r.db)

	upsertQuery := `
		INSERT INTO company_settings (id, name, roles, updated_at)
		VALUES (1, $1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			roles = EXCLUDED.roles,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, upsertQuery, s.Name, s.Roles)
	return err
}
