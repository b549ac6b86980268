package user

import "context"

// UserService covers profile self-service and the staff directory.
type UserService interface {
	// Profile returns the caller's own record.
	Profile(ctx context.Context, userID string) (UserResponse, error)

	// UpdateOwnName lets a user rename themselves; email and team are
	// admin-managed.
	UpdateOwnName(ctx context.Context, userID string, req UpdateNameRequest) (UserResponse, error)

	// ListStaff returns the staff directory for the admin team.
	ListStaff(ctx context.Context) ([]UserResponse, error)

	// ListAll returns every account including SuperAdmins (SuperAdmin only).
	ListAll(ctx context.Context) ([]UserResponse, error)

	// CreateStaff adds a staff member to the directory with an initial
	// password.
	CreateStaff(ctx context.Context, req CreateStaffRequest) (UserResponse, error)

	// UpdateStaff applies partial edits to a staff member's record.
	UpdateStaff(ctx context.Context, req UpdateStaffRequest) (UserResponse, error)
}
