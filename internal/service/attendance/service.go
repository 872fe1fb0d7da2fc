package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/notification"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/clock"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	txm database.TxManager
	attendance.AttendanceRepository
	user.UserRepository
	publisher notification.Publisher
	clock     clock.Clock
	loc       *time.Location
}

func NewAttendanceService(
	txm database.TxManager,
	attendanceRepository attendance.AttendanceRepository,
	userRepository user.UserRepository,
	publisher notification.Publisher,
	clk clock.Clock,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		txm:                  txm,
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		publisher:            publisher,
		clock:                clk,
		loc:                  loc,
	}
}

// workingDay truncates a local instant to its calendar day.
func workingDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := s.clock.Now().In(s.loc)
	today := workingDay(now)

	if attendance.IsWeekend(now) {
		return attendance.AttendanceResponse{}, attendance.ErrWeekendCheckIn
	}

	if now.After(attendance.WorkdayEnd(now, s.loc)) {
		// A check-in attempt after closing hours closes the day instead:
		// any open attendance gets its end time stamped and the caller is
		// told the window has passed.
		if err := s.closeOpenAttendance(ctx, userID, today, now); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, attendance.ErrOutsideWorkingHours
	}

	if now.Before(attendance.WorkdayStart(now, s.loc)) {
		return attendance.AttendanceResponse{}, attendance.ErrBeforeWorkingHours
	}

	var (
		created     attendance.Attendance
		lateMinutes int
		change      user.BalanceChange
		username    string
	)

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		// Lock the user row so the lateness debit serializes with any
		// other ledger mutation in flight.
		u, err := s.UserRepository.GetByIDForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}
		username = u.Username

		existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
		if err != nil {
			return fmt.Errorf("failed to check today's attendance: %w", err)
		}
		if existing != nil {
			return attendance.ErrAlreadyCheckedIn
		}

		created, err = s.AttendanceRepository.Create(ctx, attendance.Attendance{
			UserID:    userID,
			Date:      today,
			StartTime: now,
		})
		if err != nil {
			// The (user_id, date) unique constraint turns a concurrent
			// double check-in into ErrAlreadyCheckedIn here.
			return err
		}

		lateMinutes = attendance.LateMinutes(now, s.loc)
		if lateMinutes > 0 {
			change = u.DeductLeaveDays(attendance.LatePenaltyDays(lateMinutes))
			if err := s.UserRepository.UpdateLeaveBalance(ctx, u.ID, u.AnnualLeaveDays, u.LowLeaveNotified); err != nil {
				return fmt.Errorf("failed to apply lateness penalty: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Side effects fire only after the transaction committed, and never
	// affect the check-in outcome.
	if lateMinutes > 0 {
		s.publisher.NotifyLateArrival(username, lateMinutes)
	}
	if change.LowBalanceAlert {
		s.publisher.NotifyLowBalance(username, change.Current)
	}

	created.Username = &username
	return created.ToResponse(s.loc), nil
}

// closeOpenAttendance stamps the end time on today's open attendance, if any.
func (s *AttendanceServiceImpl) closeOpenAttendance(ctx context.Context, userID string, today, now time.Time) error {
	open, err := s.AttendanceRepository.GetOpenByUserAndDate(ctx, userID, today)
	if err != nil {
		return fmt.Errorf("failed to look up open attendance: %w", err)
	}
	if open == nil {
		return nil
	}
	if err := s.AttendanceRepository.SetEndTime(ctx, open.ID, now); err != nil {
		return fmt.Errorf("failed to close open attendance: %w", err)
	}
	return nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := s.clock.Now().In(s.loc)
	today := workingDay(now)

	open, err := s.AttendanceRepository.GetOpenByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up open attendance: %w", err)
	}
	if open == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	if err := s.AttendanceRepository.SetEndTime(ctx, open.ID, now); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to set end time: %w", err)
	}

	open.EndTime = &now
	return open.ToResponse(s.loc), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, callerID string) ([]attendance.AttendanceResponse, error) {
	caller, err := s.UserRepository.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caller: %w", err)
	}

	var records []attendance.Attendance
	if caller.IsAdmin() {
		records, err = s.AttendanceRepository.ListAll(ctx)
	} else {
		records, err = s.AttendanceRepository.ListByUser(ctx, callerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return s.toResponses(records), nil
}

// ListLateArrivals implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListLateArrivals(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	now := s.clock.Now().In(s.loc)
	records, err := s.AttendanceRepository.ListLateArrivals(ctx, attendance.WorkdayStart(now, s.loc))
	if err != nil {
		return nil, fmt.Errorf("failed to list late arrivals: %w", err)
	}
	return s.toResponses(records), nil
}

func (s *AttendanceServiceImpl) toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse(s.loc))
	}
	return responses
}
