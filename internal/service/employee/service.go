package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/infinithree/absensi-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	company string
}

func NewUserService(userRepository user.UserRepository, company string) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository, company: company}
}

// Profile implements user.UserService.
func (s *UserServiceImpl) Profile(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// UpdateOwnName implements user.UserService.
func (s *UserServiceImpl) UpdateOwnName(ctx context.Context, userID string, req user.UpdateNameRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.UserRepository.UpdateName(ctx, userID, req.Name); err != nil {
		return user.UserResponse{}, err
	}

	return s.Profile(ctx, userID)
}

// ListStaff implements user.UserService.
func (s *UserServiceImpl) ListStaff(ctx context.Context) ([]user.UserResponse, error) {
	staff, err := s.UserRepository.ListStaff(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(staff), nil
}

// ListAll implements user.UserService.
func (s *UserServiceImpl) ListAll(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

// CreateStaff implements user.UserService. Admin-created accounts always get
// the Staff role; the initial password is expected to be changed by the
// member afterwards.
func (s *UserServiceImpl) CreateStaff(ctx context.Context, req user.CreateStaffRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrUserEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleStaff,
		Team:         user.Team(req.Team),
		Company:      s.company,
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// UpdateStaff implements user.UserService. Partial update: nil fields keep
// their current value.
func (s *UserServiceImpl) UpdateStaff(ctx context.Context, req user.UpdateStaffRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Team != nil {
		current.Team = user.Team(*req.Team)
	}

	if err := s.UserRepository.Update(ctx, current); err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(current), nil
}

func toResponses(users []user.User) []user.UserResponse {
	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses
}
