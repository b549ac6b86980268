package request

import "context"

// LeaveRequestService defines the leave workflow.
type LeaveRequestService interface {
	// Create submits a request for the authenticated user; status starts
	// at Pending.
	Create(ctx context.Context, userID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// ListMine returns the caller's requests, newest first.
	ListMine(ctx context.Context, userID string) ([]LeaveRequestResponse, error)

	// ListAll returns every request, newest first (admin).
	ListAll(ctx context.Context) ([]LeaveRequestResponse, error)

	// Approve and Reject transition a Pending request; both results are
	// terminal.
	Approve(ctx context.Context, id string, decidedBy string) (LeaveRequestResponse, error)
	Reject(ctx context.Context, id string, decidedBy string) (LeaveRequestResponse, error)
}
