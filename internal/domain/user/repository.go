package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListStaff returns every user with the Staff role, name ascending.
	// This is the roster the report aggregator fans out over.
	ListStaff(ctx context.Context) ([]User, error)

	// ListAll returns every user regardless of role (SuperAdmin dashboard).
	ListAll(ctx context.Context) ([]User, error)

	Update(ctx context.Context, user User) error
	UpdateName(ctx context.Context, id string, name string) error
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error
	CountStaff(ctx context.Context) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}
