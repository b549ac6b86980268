package settings

import (
	"context"

	"github.com/infinithree/absensi-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepository settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepository}
}

// GetShiftSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetShiftSettings(ctx context.Context) (settings.ShiftSettings, error) {
	return s.SettingsRepository.GetShiftSettings(ctx)
}

// UpdateShiftSettings implements settings.SettingsService. Existing
// attendance statuses are never recomputed; the new windows apply from the
// next clock-in on.
func (s *SettingsServiceImpl) UpdateShiftSettings(ctx context.Context, req settings.UpdateShiftSettingsRequest) (settings.ShiftSettings, error) {
	if err := req.Validate(); err != nil {
		return settings.ShiftSettings{}, err
	}

	updated := settings.ShiftSettings{
		Morning:      req.Morning,
		Afternoon:    req.Afternoon,
		GraceMinutes: req.GraceMinutes,
	}

	if err := s.SettingsRepository.SaveShiftSettings(ctx, updated); err != nil {
		return settings.ShiftSettings{}, err
	}

	return s.SettingsRepository.GetShiftSettings(ctx)
}

// GetCompanySettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetCompanySettings(ctx context.Context) (settings.CompanySettings, error) {
	return s.SettingsRepository.GetCompanySettings(ctx)
}

// UpdateCompanyName implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateCompanyName(ctx context.Context, req settings.UpdateCompanyNameRequest) (settings.CompanySettings, error) {
	if err := req.Validate(); err != nil {
		return settings.CompanySettings{}, err
	}

	current, err := s.SettingsRepository.GetCompanySettings(ctx)
	if err != nil {
		return settings.CompanySettings{}, err
	}

	current.Name = req.Name
	if err := s.SettingsRepository.SaveCompanySettings(ctx, current); err != nil {
		return settings.CompanySettings{}, err
	}

	return current, nil
}

// AddRole implements settings.SettingsService.
func (s *SettingsServiceImpl) AddRole(ctx context.Context, req settings.RoleRequest) (settings.CompanySettings, error) {
	if err := req.Validate(); err != nil {
		return settings.CompanySettings{}, err
	}

	current, err := s.SettingsRepository.GetCompanySettings(ctx)
	if err != nil {
		return settings.CompanySettings{}, err
	}

	for _, role := range current.Roles {
		if role == req.Role {
			return settings.CompanySettings{}, settings.ErrRoleExists
		}
	}

	current.Roles = append(current.Roles, req.Role)
	if err := s.SettingsRepository.SaveCompanySettings(ctx, current); err != nil {
		return settings.CompanySettings{}, err
	}

	return current, nil
}

// RemoveRole implements settings.SettingsService. Users already assigned to
// the removed role keep their assignment; only the pick list shrinks.
func (s *SettingsServiceImpl) RemoveRole(ctx context.Context, req settings.RoleRequest) (settings.CompanySettings, error) {
	if err := req.Validate(); err != nil {
		return settings.CompanySettings{}, err
	}

	current, err := s.SettingsRepository.GetCompanySettings(ctx)
	if err != nil {
		return settings.CompanySettings{}, err
	}

	remaining := make([]string, 0, len(current.Roles))
	found := false
	for _, role := range current.Roles {
		if role == req.Role {
			found = true
			continue
		}
		remaining = append(remaining, role)
	}
	if !found {
		return settings.CompanySettings{}, settings.ErrRoleNotFound
	}

	current.Roles = remaining
	if err := s.SettingsRepository.SaveCompanySettings(ctx, current); err != nil {
		return settings.CompanySettings{}, err
	}

	return current, nil
}
