package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/notification"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	txm database.TxManager
	user.UserRepository
	publisher notification.Publisher
}

func NewEmployeeService(
	txm database.TxManager,
	userRepository user.UserRepository,
	publisher notification.Publisher,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		txm:            txm,
		UserRepository: userRepository,
		publisher:      publisher,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	employees, err := s.UserRepository.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, employees[i].ToResponse())
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return u.ToResponse(), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    &hashed,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		IsEmployee:      true,
		AnnualLeaveDays: user.DefaultAnnualLeaveDays,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return created.ToResponse(), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	var (
		updated user.User
		change  user.BalanceChange
	)

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.UserRepository.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.ErrUserNotFound
			}
			return fmt.Errorf("failed to load employee: %w", err)
		}

		update := user.UpdateUserRequest{
			ID:        id,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}

		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			hashed := string(hash)
			update.PasswordHash = &hashed
		}

		if err := s.UserRepository.Update(ctx, update); err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}

		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.FirstName != nil {
			u.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			u.LastName = *req.LastName
		}

		// An administrative balance correction runs the same latch check
		// as every other ledger mutation.
		if req.AnnualLeaveDays != nil {
			change = u.SetLeaveDays(*req.AnnualLeaveDays)
			if err := s.UserRepository.UpdateLeaveBalance(ctx, id, u.AnnualLeaveDays, u.LowLeaveNotified); err != nil {
				return fmt.Errorf("failed to update leave balance: %w", err)
			}
		}

		updated = u
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	if change.LowBalanceAlert {
		s.publisher.NotifyLowBalance(updated.Username, change.Current)
	}

	return updated.ToResponse(), nil
}
