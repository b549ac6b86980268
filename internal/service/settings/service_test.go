package settings

import (
	"context"
	"testing"

	"github.com/infinithree/absensi-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	shifts  settings.ShiftSettings
	company settings.CompanySettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{
		shifts:  settings.DefaultShiftSettings(),
		company: settings.DefaultCompanySettings(),
	}
}

func (f *fakeSettingsRepo) GetShiftSettings(ctx context.Context) (settings.ShiftSettings, error) {
	return f.shifts, nil
}

func (f *fakeSettingsRepo) SaveShiftSettings(ctx context.Context, s settings.ShiftSettings) error {
	f.shifts = s
	return nil
}

func (f *fakeSettingsRepo) GetCompanySettings(ctx context.Context) (settings.CompanySettings, error) {
	return f.company, nil
}

func (f *fakeSettingsRepo) SaveCompanySettings(ctx context.Context, s settings.CompanySettings) error {
	f.company = s
	return nil
}

func TestUpdateShiftSettings(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	updated, err := svc.UpdateShiftSettings(context.Background(), settings.UpdateShiftSettingsRequest{
		Morning:      settings.ShiftWindow{Start: "07:30", End: "15:30"},
		Afternoon:    settings.ShiftWindow{Start: "15:30", End: "21:00"},
		GraceMinutes: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "07:30", updated.Morning.Start)
	assert.Equal(t, 10, updated.GraceMinutes)
}

func TestUpdateShiftSettingsRejectsBadWindow(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	_, err := svc.UpdateShiftSettings(context.Background(), settings.UpdateShiftSettingsRequest{
		Morning:   settings.ShiftWindow{Start: "25:00", End: "16:00"},
		Afternoon: settings.ShiftWindow{Start: "16:00", End: "20:00"},
	})
	assert.Error(t, err)
}

func TestUpdateCompanyName(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())

	updated, err := svc.UpdateCompanyName(context.Background(), settings.UpdateCompanyNameRequest{Name: "infinithree clinic"})
	require.NoError(t, err)

	assert.Equal(t, "infinithree clinic", updated.Name)
	// Role list untouched by a rename.
	assert.Equal(t, []string{"Host", "Treatment", "Admin"}, updated.Roles)
}

func TestAddRoleRejectsDuplicate(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())
	ctx := context.Background()

	updated, err := svc.AddRole(ctx, settings.RoleRequest{Role: "Reception"})
	require.NoError(t, err)
	assert.Contains(t, updated.Roles, "Reception")

	_, err = svc.AddRole(ctx, settings.RoleRequest{Role: "Reception"})
	assert.ErrorIs(t, err, settings.ErrRoleExists)
}

func TestRemoveRole(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo())
	ctx := context.Background()

	updated, err := svc.RemoveRole(ctx, settings.RoleRequest{Role: "Host"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Treatment", "Admin"}, updated.Roles)

	_, err = svc.RemoveRole(ctx, settings.RoleRequest{Role: "Host"})
	assert.ErrorIs(t, err, settings.ErrRoleNotFound)
}
