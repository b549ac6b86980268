package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/domain/request"
	"github.com/infinithree/absensi-backend-go/internal/domain/user"
	"github.com/infinithree/absensi-backend-go/internal/pkg/email"
)

type LeaveRequestServiceImpl struct {
	request.LeaveRequestRepository
	userRepo     user.UserRepository
	emailService email.EmailService
}

func NewLeaveRequestService(
	leaveRequestRepository request.LeaveRequestRepository,
	userRepository user.UserRepository,
	emailService email.EmailService,
) request.LeaveRequestService {
	return &LeaveRequestServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		userRepo:               userRepository,
		emailService:           emailService,
	}
}

// Create implements request.LeaveRequestService.
func (s *LeaveRequestServiceImpl) Create(ctx context.Context, userID string, req request.CreateLeaveRequestRequest) (request.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.LeaveRequestRepository.Create(ctx, request.LeaveRequest{
		UserID:    userID,
		Type:      req.Type,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    request.StatusPending,
	})
	if err != nil {
		return request.LeaveRequestResponse{}, err
	}

	return request.ToResponse(created), nil
}

// ListMine implements request.LeaveRequestService.
func (s *LeaveRequestServiceImpl) ListMine(ctx context.Context, userID string) ([]request.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListAll implements request.LeaveRequestService.
func (s *LeaveRequestServiceImpl) ListAll(ctx context.Context) ([]request.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// Approve implements request.LeaveRequestService.
func (s *LeaveRequestServiceImpl) Approve(ctx context.Context, id string, decidedBy string) (request.LeaveRequestResponse, error) {
	return s.decide(ctx, id, request.StatusApproved, decidedBy)
}

// Reject implements request.LeaveRequestService.
func (s *LeaveRequestServiceImpl) Reject(ctx context.Context, id string, decidedBy string) (request.LeaveRequestResponse, error) {
	return s.decide(ctx, id, request.StatusRejected, decidedBy)
}

// decide runs the Pending-to-terminal transition and notifies the requester.
// The email is best-effort: a failed send never rolls the decision back.
func (s *LeaveRequestServiceImpl) decide(ctx context.Context, id string, status request.Status, decidedBy string) (request.LeaveRequestResponse, error) {
	updated, err := s.LeaveRequestRepository.UpdateStatus(ctx, id, status, decidedBy)
	if err != nil {
		return request.LeaveRequestResponse{}, err
	}

	if s.emailService != nil {
		deciderName := decidedBy
		if decider, err := s.userRepo.GetByID(ctx, decidedBy); err == nil {
			deciderName = decider.Name
		}
		if requester, err := s.userRepo.GetByID(ctx, updated.UserID); err == nil {
			if err := s.emailService.SendLeaveDecision(
				requester.Email,
				requester.Name,
				updated.Type,
				updated.StartDate.Format("2006-01-02"),
				updated.EndDate.Format("2006-01-02"),
				string(status),
				deciderName,
			); err != nil {
				slog.Error("Failed to send leave decision email", "request_id", id, "error", err)
			}
		}
	}

	return request.ToResponse(updated), nil
}

func toResponses(requests []request.LeaveRequest) []request.LeaveRequestResponse {
	responses := make([]request.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, request.ToResponse(r))
	}
	return responses
}
