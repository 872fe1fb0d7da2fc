package employee

import (
	"context"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
)

// EmployeeService manages employee accounts. Admin only at the HTTP layer.
type EmployeeService interface {
	List(ctx context.Context) ([]user.UserResponse, error)
	Get(ctx context.Context, id string) (user.UserResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (user.UserResponse, error)

	// Update applies partial changes. A balance change runs the same
	// low-balance latch check as any other ledger mutation.
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (user.UserResponse, error)
}
