package settings

import "context"

// SettingsService manages the shift and company configuration singletons.
type SettingsService interface {
	GetShiftSettings(ctx context.Context) (ShiftSettings, error)
	UpdateShiftSettings(ctx context.Context, req UpdateShiftSettingsRequest) (ShiftSettings, error)

	GetCompanySettings(ctx context.Context) (CompanySettings, error)
	UpdateCompanyName(ctx context.Context, req UpdateCompanyNameRequest) (CompanySettings, error)

	// AddRole appends a team role; duplicates are rejected.
	AddRole(ctx context.Context, req RoleRequest) (CompanySettings, error)

	// RemoveRole removes a team role; unknown roles are rejected.
	RemoveRole(ctx context.Context, req RoleRequest) (CompanySettings, error)
}
