package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, username, email, password_hash, first_name, last_name,
	   is_employee, is_staff, is_superuser, annual_leave_days, low_leave_notified,
	   created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.IsEmployee, &u.IsStaff, &u.IsSuperuser, &u.AnnualLeaveDays, &u.LowLeaveNotified,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

// GetByIDForUpdate implements user.UserRepository.
func (r *userRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 FOR UPDATE`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, username, email, password_hash, first_name, last_name,
			is_employee, is_staff, is_superuser, annual_leave_days, low_leave_notified,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, false, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.Username,
		newUser.Email,
		newUser.PasswordHash,
		newUser.FirstName,
		newUser.LastName,
		newUser.IsEmployee,
		newUser.IsStaff,
		newUser.IsSuperuser,
		newUser.AnnualLeaveDays,
	).Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.User{}, user.ErrEmailExists
			}
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = COALESCE($2, email),
			first_name = COALESCE($3, first_name),
			last_name = COALESCE($4, last_name),
			is_employee = COALESCE($5, is_employee),
			annual_leave_days = COALESCE($6, annual_leave_days),
			password_hash = COALESCE($7, password_hash),
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		req.ID,
		req.Email,
		req.FirstName,
		req.LastName,
		req.IsEmployee,
		req.AnnualLeaveDays,
		req.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdateLeaveBalance implements user.UserRepository.
func (r *userRepositoryImpl) UpdateLeaveBalance(ctx context.Context, id string, annualLeaveDays float64, lowLeaveNotified bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET annual_leave_days = $2,
			low_leave_notified = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, annualLeaveDays, lowLeaveNotified)
	if err != nil {
		return fmt.Errorf("failed to update leave balance: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}
	return nil
}

// ListEmployees implements user.UserRepository.
func (r *userRepositoryImpl) ListEmployees(ctx context.Context) ([]user.User, error) {
	return r.list(ctx, `is_employee = true`)
}

// ListSuperusers implements user.UserRepository.
func (r *userRepositoryImpl) ListSuperusers(ctx context.Context) ([]user.User, error) {
	return r.list(ctx, `is_superuser = true`)
}

func (r *userRepositoryImpl) list(ctx context.Context, where string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s ORDER BY username`, userColumns, where)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
