package user

import "time"

type Role string

const (
	RoleStaff      Role = "Staff"
	RoleSuperAdmin Role = "SuperAdmin"
)

// Team is the fine-grained classifier within the Staff role. The list is
// configurable through company settings; these are the seeded defaults.
type Team string

const (
	TeamHost      Team = "Host"
	TeamTreatment Team = "Treatment"
	TeamAdmin     Team = "Admin"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Team         Team
	Company      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSuperAdmin reports whether the user holds the SuperAdmin role.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsAdminTeam reports whether the user can process requests and manage staff.
// SuperAdmin always can; Staff can when assigned to the Admin team.
func (u *User) IsAdminTeam() bool {
	return u.Role == RoleSuperAdmin || (u.Role == RoleStaff && u.Team == TeamAdmin)
}
