package leave

import (
	"context"
	"fmt"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/leave"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/notification"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	txm database.TxManager
	leave.LeaveRequestRepository
	user.UserRepository
	publisher notification.Publisher
}

func NewLeaveService(
	txm database.TxManager,
	leaveRequestRepository leave.LeaveRequestRepository,
	userRepository user.UserRepository,
	publisher notification.Publisher,
) leave.LeaveService {
	return &LeaveServiceImpl{
		txm:                    txm,
		LeaveRequestRepository: leaveRequestRepository,
		UserRepository:         userRepository,
		publisher:              publisher,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, actorID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var (
		created  leave.LeaveRequest
		change   user.BalanceChange
		username string
	)

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		actor, err := s.UserRepository.GetByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("failed to load requestor: %w", err)
		}

		targetID := req.UserID
		if targetID == "" {
			targetID = actorID
		}

		target, err := s.UserRepository.GetByIDForUpdate(ctx, targetID)
		if err != nil {
			return fmt.Errorf("failed to load target user: %w", err)
		}
		username = target.Username

		if !target.IsEmployee {
			return leave.ErrNotEmployee
		}

		startDate, endDate := req.Dates()
		totalDays := leave.TotalDays(startDate, endDate)
		if float64(totalDays) > target.AnnualLeaveDays {
			return leave.ErrInsufficientBalance
		}

		created, err = s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
			UserID:    target.ID,
			StartDate: startDate,
			EndDate:   endDate,
			Reason:    req.Reason,
			Status:    leave.StatusPending,
		})
		if err != nil {
			return err
		}

		// Requests filed by an administrator debit the balance up front;
		// an employee's own request is charged only on approval.
		if actor.IsAdmin() {
			change = target.DeductLeaveDays(float64(totalDays))
			if err := s.UserRepository.UpdateLeaveBalance(ctx, target.ID, target.AnnualLeaveDays, target.LowLeaveNotified); err != nil {
				return fmt.Errorf("failed to debit leave balance: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if change.LowBalanceAlert {
		s.publisher.NotifyLowBalance(username, change.Current)
	}

	created.Username = &username
	return created.ToResponse(), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	var (
		request leave.LeaveRequest
		change  user.BalanceChange
		owner   user.User
	)

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.LeaveRequestRepository.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}

		if request.IsProcessed() {
			return leave.ErrLeaveAlreadyProcessed
		}

		if err := s.LeaveRequestRepository.UpdateStatus(ctx, request.ID, leave.StatusApproved); err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}
		request.Status = leave.StatusApproved

		owner, err = s.UserRepository.GetByIDForUpdate(ctx, request.UserID)
		if err != nil {
			return fmt.Errorf("failed to load request owner: %w", err)
		}

		change = owner.DeductLeaveDays(float64(request.TotalDays()))
		if err := s.UserRepository.UpdateLeaveBalance(ctx, owner.ID, owner.AnnualLeaveDays, owner.LowLeaveNotified); err != nil {
			return fmt.Errorf("failed to debit leave balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.publisher.Publish(request.UserID, notification.TypeSuccess,
		fmt.Sprintf("Your leave request was approved: %s - %s",
			request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02")))
	if change.LowBalanceAlert {
		s.publisher.NotifyLowBalance(owner.Username, change.Current)
	}

	return request.ToResponse(), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	var request leave.LeaveRequest

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.LeaveRequestRepository.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}

		if request.IsProcessed() {
			return leave.ErrLeaveAlreadyProcessed
		}

		if err := s.LeaveRequestRepository.UpdateStatus(ctx, request.ID, leave.StatusRejected); err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}
		request.Status = leave.StatusRejected

		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.publisher.Publish(request.UserID, notification.TypeError,
		fmt.Sprintf("Your leave request was rejected: %s - %s",
			request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02")))

	return request.ToResponse(), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, callerID string, status *leave.LeaveRequestStatus) ([]leave.LeaveRequestResponse, error) {
	caller, err := s.UserRepository.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}

	var requests []leave.LeaveRequest
	if caller.IsAdmin() {
		requests, err = s.LeaveRequestRepository.ListAll(ctx, status)
	} else {
		requests, err = s.LeaveRequestRepository.ListByUser(ctx, callerID, status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toResponses(requests), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	pending := leave.StatusPending
	requests, err := s.LeaveRequestRepository.ListAll(ctx, &pending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return toResponses(requests), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requests[i].ToResponse())
	}
	return responses
}
