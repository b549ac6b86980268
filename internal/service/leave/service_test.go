package leave

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/domain/request"
	"github.com/infinithree/absensi-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests map[string]*request.LeaveRequest
	seq      int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]*request.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req request.LeaveRequest) (request.LeaveRequest, error) {
	f.seq++
	req.ID = fmt.Sprintf("req-%d", f.seq)
	req.CreatedAt = time.Now()
	f.requests[req.ID] = &req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (request.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return request.LeaveRequest{}, request.ErrRequestNotFound
	}
	return *req, nil
}

func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, req := range f.requests {
		if req.UserID == userID {
			out = append(out, *req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeLeaveRepo) ListAll(ctx context.Context) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, req := range f.requests {
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeLeaveRepo) ListPending(ctx context.Context, limit int) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, req := range f.requests {
		if req.Status == request.StatusPending && len(out) < limit {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) CountPending(ctx context.Context) (int64, error) {
	var count int64
	for _, req := range f.requests {
		if req.Status == request.StatusPending {
			count++
		}
	}
	return count, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status request.Status, decidedBy string) (request.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return request.LeaveRequest{}, request.ErrRequestNotFound
	}
	if req.Status != request.StatusPending {
		return request.LeaveRequest{}, request.ErrRequestAlreadyProcessed
	}
	now := time.Now()
	req.Status = status
	req.DecidedBy = &decidedBy
	req.DecidedAt = &now
	return *req, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListStaff(ctx context.Context) ([]user.User, error) { return nil, nil }
func (f *fakeUserRepo) ListAll(ctx context.Context) ([]user.User, error)   { return nil, nil }
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error      { return nil }
func (f *fakeUserRepo) UpdateName(ctx context.Context, id string, name string) error {
	return nil
}
func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	return nil
}
func (f *fakeUserRepo) CountStaff(ctx context.Context) (int64, error) { return 0, nil }
func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error)   { return 0, nil }

type recordedEmail struct {
	to     string
	status string
}

type fakeEmailService struct {
	sent []recordedEmail
}

func (f *fakeEmailService) SendLeaveDecision(to, staffName, requestType, startDate, endDate, status, decidedBy string) error {
	f.sent = append(f.sent, recordedEmail{to: to, status: status})
	return nil
}

func (f *fakeEmailService) SendWelcome(to, staffName, companyName string) error {
	return nil
}

func newTestService() (request.LeaveRequestService, *fakeLeaveRepo, *fakeEmailService) {
	repo := newFakeLeaveRepo()
	users := &fakeUserRepo{users: map[string]user.User{
		"u1":    {ID: "u1", Name: "Budi", Email: "budi@infinithree.id"},
		"admin": {ID: "admin", Name: "Sari", Email: "sari@infinithree.id"},
	}}
	emails := &fakeEmailService{}
	return NewLeaveRequestService(repo, users, emails), repo, emails
}

func validCreateRequest() request.CreateLeaveRequestRequest {
	return request.CreateLeaveRequestRequest{
		Type:      request.TypeSickLeave,
		StartDate: "2025-06-10",
		EndDate:   "2025-06-11",
		Reason:    "Demam",
	}
}

func TestCreateStartsPending(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Create(context.Background(), "u1", validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, string(request.StatusPending), resp.Status)
	assert.Equal(t, request.TypeSickLeave, resp.Type)
	assert.Equal(t, "2025-06-10", resp.StartDate)
}

func TestCreateRejectsBackwardsRange(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.StartDate = "2025-06-11"
	req.EndDate = "2025-06-10"

	_, err := svc.Create(context.Background(), "u1", req)
	assert.Error(t, err)
}

func TestApproveSendsNotification(t *testing.T) {
	svc, _, emails := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.Approve(ctx, created.ID, "admin")
	require.NoError(t, err)

	assert.Equal(t, string(request.StatusApproved), resp.Status)
	require.Len(t, emails.sent, 1)
	assert.Equal(t, "budi@infinithree.id", emails.sent[0].to)
	assert.Equal(t, "Approved", emails.sent[0].status)
}

func TestDecisionIsTerminal(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Reject(ctx, created.ID, "admin")
	require.NoError(t, err)

	// Neither a second reject nor a flip to approve may touch it.
	_, err = svc.Reject(ctx, created.ID, "admin")
	assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)

	_, err = svc.Approve(ctx, created.ID, "admin")
	assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)
}

func TestApproveUnknownRequest(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Approve(context.Background(), "missing", "admin")
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestListMineFiltersByUser(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", validCreateRequest())
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", validCreateRequest())
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "u1", mine[0].UserID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
