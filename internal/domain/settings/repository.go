package settings

import "context"

// SettingsRepository stores the two configuration singletons. Reads on a
// fresh database return the seeded defaults.
type SettingsRepository interface {
	GetShiftSettings(ctx context.Context) (ShiftSettings, error)
	SaveShiftSettings(ctx context.Context, s ShiftSettings) error

	GetCompanySettings(ctx context.Context) (CompanySettings, error)
	SaveCompanySettings(ctx context.Context, s CompanySettings) error
}
