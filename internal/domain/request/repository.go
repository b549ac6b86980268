package request

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByUser returns the user's requests, created_at descending.
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListAll returns every request, created_at descending.
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	// ListPending returns pending requests, newest first, up to limit.
	ListPending(ctx context.Context, limit int) ([]LeaveRequest, error)
	CountPending(ctx context.Context) (int64, error)

	// UpdateStatus transitions the request only if it is still Pending.
	// Returns ErrRequestAlreadyProcessed when the row was already decided.
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) (LeaveRequest, error)
}
