package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMenu_SuperAdminIgnoresTeam(t *testing.T) {
	for _, team := range []Team{TeamHost, TeamTreatment, TeamAdmin, Team("")} {
		menu := ResolveMenu(RoleSuperAdmin, team)
		assert.Equal(t, "superadmin-dashboard", menu.Home)
		assert.Len(t, menu.Items, 6)
	}
}

func TestResolveMenu_StaffAdminTeam(t *testing.T) {
	menu := ResolveMenu(RoleStaff, TeamAdmin)
	assert.Equal(t, "admin-dashboard", menu.Home)

	ids := make([]string, 0, len(menu.Items))
	for _, item := range menu.Items {
		ids = append(ids, item.ID)
	}
	assert.Contains(t, ids, "admin-employees")
	assert.Contains(t, ids, "admin-requests")
	assert.Contains(t, ids, "admin-reports")
	assert.NotContains(t, ids, "superadmin-settings")
}

func TestResolveMenu_SelfService(t *testing.T) {
	for _, team := range []Team{TeamHost, TeamTreatment} {
		menu := ResolveMenu(RoleStaff, team)
		assert.Equal(t, "user-dashboard", menu.Home)
		assert.Len(t, menu.Items, 4)
	}
}

func TestResolveMenu_Total(t *testing.T) {
	// Unknown roles and teams still resolve to a usable menu.
	menu := ResolveMenu(Role("Intern"), Team("Night"))
	assert.Equal(t, "user-dashboard", menu.Home)
	assert.NotEmpty(t, menu.Items)
}

func TestResolveMenu_Deterministic(t *testing.T) {
	first := ResolveMenu(RoleStaff, TeamAdmin)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ResolveMenu(RoleStaff, TeamAdmin))
	}
}

func TestResolvePage_FallsBackToHome(t *testing.T) {
	assert.Equal(t, "admin-reports", ResolvePage(RoleStaff, TeamAdmin, "admin-reports"))
	assert.Equal(t, "admin-dashboard", ResolvePage(RoleStaff, TeamAdmin, "no-such-page"))
	assert.Equal(t, "user-dashboard", ResolvePage(RoleStaff, TeamHost, "superadmin-settings"))
	assert.Equal(t, "superadmin-dashboard", ResolvePage(RoleSuperAdmin, TeamHost, ""))
}
