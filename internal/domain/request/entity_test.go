package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	pending := LeaveRequest{Status: StatusPending}
	assert.True(t, pending.CanTransition(StatusApproved))
	assert.True(t, pending.CanTransition(StatusRejected))
	assert.False(t, pending.CanTransition(StatusPending))

	// Terminal states never move again, not even back to Pending.
	for _, terminal := range []Status{StatusApproved, StatusRejected} {
		r := LeaveRequest{Status: terminal}
		assert.False(t, r.CanTransition(StatusApproved))
		assert.False(t, r.CanTransition(StatusRejected))
		assert.False(t, r.CanTransition(StatusPending))
	}
}

func TestCreateLeaveRequestValidate(t *testing.T) {
	valid := CreateLeaveRequestRequest{
		Type:      TypeAnnualLeave,
		StartDate: "2025-07-01",
		EndDate:   "2025-07-03",
		Reason:    "Liburan keluarga",
	}
	assert.NoError(t, valid.Validate())

	sameDay := valid
	sameDay.EndDate = sameDay.StartDate
	assert.NoError(t, sameDay.Validate())

	backwards := valid
	backwards.EndDate = "2025-06-30"
	assert.Error(t, backwards.Validate())

	unknownType := valid
	unknownType.Type = "Sabbatical"
	assert.Error(t, unknownType.Validate())

	missingReason := valid
	missingReason.Reason = "  "
	assert.Error(t, missingReason.Validate())

	badDate := valid
	badDate.StartDate = "01-07-2025"
	assert.Error(t, badDate.Validate())
}
