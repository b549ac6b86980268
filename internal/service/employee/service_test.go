package employee

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/infinithree/absensi-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	if u.ID == "" {
		f.seq++
		u.ID = fmt.Sprintf("user-%d", f.seq)
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListStaff(_ context.Context) ([]user.User, error) {
	var staff []user.User
	for _, u := range f.users {
		if u.Role == user.RoleStaff {
			staff = append(staff, u)
		}
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].Name < staff[j].Name })
	return staff, nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]user.User, error) {
	var all []user.User
	for _, u := range f.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdateName(_ context.Context, id string, name string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Name = name
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdatePasswordHash(_ context.Context, id string, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = hash
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) CountStaff(ctx context.Context) (int64, error) {
	staff, _ := f.ListStaff(ctx)
	return int64(len(staff)), nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func TestCreateStaffHashesPasswordAndDefaultsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, "infinithree")

	resp, err := svc.CreateStaff(context.Background(), user.CreateStaffRequest{
		Name:     "Dewi",
		Email:    "dewi@infinithree.id",
		Password: "rahasia1",
		Team:     "Host",
	})
	require.NoError(t, err)

	assert.Equal(t, "Staff", resp.Role)
	assert.Equal(t, "Host", resp.Team)
	assert.Equal(t, "infinithree", resp.Company)

	stored, err := repo.GetByEmail(context.Background(), "dewi@infinithree.id")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia1")))
}

func TestCreateStaffRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, "infinithree")

	req := user.CreateStaffRequest{
		Name:     "Dewi",
		Email:    "dewi@infinithree.id",
		Password: "rahasia1",
		Team:     "Host",
	}
	_, err := svc.CreateStaff(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateStaff(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestCreateStaffRejectsShortPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), "infinithree")

	_, err := svc.CreateStaff(context.Background(), user.CreateStaffRequest{
		Name:     "Dewi",
		Email:    "dewi@infinithree.id",
		Password: "abc",
		Team:     "Host",
	})
	assert.Error(t, err)
}

func TestUpdateStaffPartialMerge(t *testing.T) {
	repo := newFakeUserRepo()
	created, err := repo.Create(context.Background(), user.User{
		Name:  "Eko",
		Email: "eko@infinithree.id",
		Role:  user.RoleStaff,
		Team:  user.TeamTreatment,
	})
	require.NoError(t, err)

	svc := NewUserService(repo, "infinithree")

	newTeam := "Admin"
	resp, err := svc.UpdateStaff(context.Background(), user.UpdateStaffRequest{
		ID:   created.ID,
		Team: &newTeam,
	})
	require.NoError(t, err)

	assert.Equal(t, "Eko", resp.Name)
	assert.Equal(t, "eko@infinithree.id", resp.Email)
	assert.Equal(t, "Admin", resp.Team)
}

func TestUpdateStaffUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), "infinithree")

	name := "Fulan"
	_, err := svc.UpdateStaff(context.Background(), user.UpdateStaffRequest{
		ID:   "missing",
		Name: &name,
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListStaffExcludesSuperAdmins(t *testing.T) {
	repo := newFakeUserRepo()
	_, err := repo.Create(context.Background(), user.User{
		Name: "Admin Utama", Email: "admin@infinithree.id",
		Role: user.RoleSuperAdmin, Team: user.TeamAdmin,
	})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), user.User{
		Name: "Gita", Email: "gita@infinithree.id",
		Role: user.RoleStaff, Team: user.TeamHost,
	})
	require.NoError(t, err)

	svc := NewUserService(repo, "infinithree")

	staff, err := svc.ListStaff(context.Background())
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "Gita", staff[0].Name)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
