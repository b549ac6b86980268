package request

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Leave types as the frontend submits them.
const (
	TypeSickLeave     = "Izin Sakit"
	TypeAnnualLeave   = "Cuti Tahunan"
	TypePersonalLeave = "Izin Pribadi"
)

var KnownTypes = []string{TypeSickLeave, TypeAnnualLeave, TypePersonalLeave}

// LeaveRequest is a staff time-off application. Status transitions exactly
// once, from Pending to Approved or Rejected; both are terminal.
type LeaveRequest struct {
	ID        string
	UserID    string
	UserName  string
	Type      string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    Status
	DecidedBy *string
	DecidedAt *time.Time
	CreatedAt time.Time
}

// CanTransition reports whether the request may move to the given status.
func (r *LeaveRequest) CanTransition(to Status) bool {
	return r.Status == StatusPending && (to == StatusApproved || to == StatusRejected)
}
