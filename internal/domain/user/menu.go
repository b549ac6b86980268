package user

// MenuItem is one navigation entry the frontend renders.
type MenuItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Admin bool   `json:"admin"`
}

// Menu is the resolved navigation for a session.
type Menu struct {
	Home  string     `json:"home"`
	Items []MenuItem `json:"items"`
}

var staffMenu = Menu{
	Home: "user-dashboard",
	Items: []MenuItem{
		{ID: "user-dashboard", Name: "Dasbor", Icon: "fa-home"},
		{ID: "user-requests", Name: "Pengajuan", Icon: "fa-file-alt"},
		{ID: "user-history", Name: "Riwayat", Icon: "fa-history"},
		{ID: "user-profile", Name: "Profil", Icon: "fa-user-cog"},
	},
}

var adminTeamMenu = Menu{
	Home: "admin-dashboard",
	Items: []MenuItem{
		{ID: "admin-dashboard", Name: "Dasbor Tim", Icon: "fa-tachometer-alt", Admin: true},
		{ID: "admin-employees", Name: "Manajemen Staff", Icon: "fa-users", Admin: true},
		{ID: "admin-requests", Name: "Proses Pengajuan", Icon: "fa-inbox", Admin: true},
		{ID: "admin-reports", Name: "Laporan", Icon: "fa-chart-bar", Admin: true},
		{ID: "admin-profile", Name: "Profil", Icon: "fa-user-shield", Admin: true},
	},
}

var superAdminMenu = Menu{
	Home: "superadmin-dashboard",
	Items: []MenuItem{
		{ID: "superadmin-dashboard", Name: "Dasbor Utama", Icon: "fa-crown", Admin: true},
		{ID: "admin-employees", Name: "Manajemen Staff", Icon: "fa-users", Admin: true},
		{ID: "admin-requests", Name: "Proses Pengajuan", Icon: "fa-inbox", Admin: true},
		{ID: "admin-reports", Name: "Laporan", Icon: "fa-chart-bar", Admin: true},
		{ID: "superadmin-settings", Name: "Pengaturan", Icon: "fa-cogs", Admin: true},
		{ID: "admin-profile", Name: "Profil", Icon: "fa-user-shield", Admin: true},
	},
}

// ResolveMenu maps (role, team) to the navigation menu. Total: every
// role/team combination resolves, unknown roles degrade to the self-service
// menu.
func ResolveMenu(role Role, team Team) Menu {
	switch {
	case role == RoleSuperAdmin:
		return superAdminMenu
	case role == RoleStaff && team == TeamAdmin:
		return adminTeamMenu
	default:
		return staffMenu
	}
}

// ResolvePage returns the page to render for a requested page ID. Pages
// outside the session's menu fall back to the menu's home dashboard.
func ResolvePage(role Role, team Team, requested string) string {
	menu := ResolveMenu(role, team)
	for _, item := range menu.Items {
		if item.ID == requested {
			return requested
		}
	}
	return menu.Home
}
