package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, user_id, date, start_time, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, att.UserID, att.Date, att.StartTime).
		Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	return r.getOne(ctx, `user_id = $1 AND date = $2`, userID, date)
}

// GetOpenByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	return r.getOne(ctx, `user_id = $1 AND date = $2 AND end_time IS NULL`, userID, date)
}

func (r *attendanceRepositoryImpl) getOne(ctx context.Context, where string, args ...any) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, user_id, date, start_time, end_time, created_at, updated_at
		FROM attendances
		WHERE %s
	`, where)

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, args...).Scan(
		&att.ID, &att.UserID, &att.Date, &att.StartTime, &att.EndTime,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &att, nil
}

// SetEndTime implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetEndTime(ctx context.Context, id string, endTime time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET end_time = $2, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, endTime)
	if err != nil {
		return fmt.Errorf("failed to set attendance end time: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	return r.list(ctx, `WHERE a.user_id = $1`, userID)
}

// ListAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	return r.list(ctx, ``)
}

// ListLateArrivals implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListLateArrivals(ctx context.Context, after time.Time) ([]attendance.Attendance, error) {
	return r.list(ctx, `WHERE a.start_time > $1`, after)
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT a.id, a.user_id, a.date, a.start_time, a.end_time,
			   a.created_at, a.updated_at, u.username
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		%s
		ORDER BY a.date DESC, a.start_time DESC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.StartTime, &att.EndTime,
			&att.CreatedAt, &att.UpdatedAt, &att.Username,
		)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}
