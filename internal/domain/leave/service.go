package leave

import (
	"context"
)

// LeaveService defines the leave-request workflow.
type LeaveService interface {
	// Create validates and persists a new PENDING request. An
	// administrator creating a request for an employee debits that
	// employee's balance immediately; an employee's own request touches
	// the balance only on approval.
	Create(ctx context.Context, actorID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// Approve moves a PENDING request to APPROVED and debits the owner's
	// balance. Admin only.
	Approve(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	// Reject moves a PENDING request to REJECTED. No balance change.
	// Admin only.
	Reject(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	// List returns requests: the caller's own unless the caller is an
	// administrator, in which case everyone's.
	List(ctx context.Context, callerID string, status *LeaveRequestStatus) ([]LeaveRequestResponse, error)

	// ListPending returns all PENDING requests. Admin only.
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)
}
