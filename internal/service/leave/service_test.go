package leave

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/leave"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/notification"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/sse"
)

type nopTxManager struct{}

func (nopTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users map[string]*user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return *u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return *u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByIDForUpdate(ctx context.Context, id string) (user.User, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	f.users[newUser.ID] = &newUser
	return newUser, nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ user.UpdateUserRequest) error {
	return nil
}

func (f *fakeUserRepo) UpdateLeaveBalance(_ context.Context, id string, annualLeaveDays float64, lowLeaveNotified bool) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.AnnualLeaveDays = annualLeaveDays
	u.LowLeaveNotified = lowLeaveNotified
	return nil
}

func (f *fakeUserRepo) ListEmployees(_ context.Context) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListSuperusers(_ context.Context) ([]user.User, error) {
	return nil, nil
}

type fakeLeaveRepo struct {
	requests map[string]*leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: map[string]*leave.LeaveRequest{}}
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	for _, r := range f.requests {
		if r.UserID == request.UserID && r.StartDate.Equal(request.StartDate) && r.EndDate.Equal(request.EndDate) {
			return leave.LeaveRequest{}, leave.ErrDuplicateLeaveRequest
		}
	}
	f.nextID++
	request.ID = fmt.Sprintf("lr-%d", f.nextID)
	stored := request
	f.requests[request.ID] = &stored
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return *r, nil
}

func (f *fakeLeaveRepo) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.LeaveRequestStatus) error {
	r, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeLeaveRepo) ListByUser(_ context.Context, userID string, status *leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.UserID == userID && (status == nil || r.Status == *status) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListAll(_ context.Context, status *leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if status == nil || r.Status == *status {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakePublisher struct {
	published   []string
	lowBalances []float64
}

func (f *fakePublisher) Publish(userID string, _ notification.Type, message string) {
	f.published = append(f.published, userID+": "+message)
}

func (f *fakePublisher) NotifyLateArrival(_ string, _ int) {}

func (f *fakePublisher) NotifyLowBalance(_ string, remainingDays float64) {
	f.lowBalances = append(f.lowBalances, remainingDays)
}

func (f *fakePublisher) Subscribe(_ string) (<-chan sse.Event, func()) {
	ch := make(chan sse.Event)
	return ch, func() {}
}

func (f *fakePublisher) Stop() {}

func seedUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*user.User{
		"emp-1": {
			ID:              "emp-1",
			Username:        "jdoe",
			IsEmployee:      true,
			AnnualLeaveDays: 5,
		},
		"admin-1": {
			ID:       "admin-1",
			Username: "admin",
			IsStaff:  true,
		},
	}}
}

func newTestService(repo *fakeLeaveRepo, users *fakeUserRepo, pub *fakePublisher) leave.LeaveService {
	return NewLeaveService(nopTxManager{}, repo, users, pub)
}

func TestCreateByEmployeeKeepsBalance(t *testing.T) {
	users := seedUsers()
	svc := newTestService(newFakeLeaveRepo(), users, &fakePublisher{})

	resp, err := svc.Create(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-08",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, 5, resp.TotalDays)
	// The balance is only touched on approval.
	assert.Equal(t, 5.0, users.users["emp-1"].AnnualLeaveDays)
}

func TestCreateSameDayCountsOneDay(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), seedUsers(), &fakePublisher{})

	resp, err := svc.Create(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-04",
		Reason:    "appointment",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalDays)
}

func TestCreateInsufficientBalance(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), seedUsers(), &fakePublisher{})

	// Six days against a balance of five.
	_, err := svc.Create(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-09",
		Reason:    "family trip",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestCreateForNonEmployee(t *testing.T) {
	users := seedUsers()
	svc := newTestService(newFakeLeaveRepo(), users, &fakePublisher{})

	_, err := svc.Create(context.Background(), "admin-1", leave.CreateLeaveRequestRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-05",
		Reason:    "time off",
	})
	assert.ErrorIs(t, err, leave.ErrNotEmployee)
}

func TestCreateByAdminDebitsImmediately(t *testing.T) {
	users := seedUsers()
	pub := &fakePublisher{}
	svc := newTestService(newFakeLeaveRepo(), users, pub)

	resp, err := svc.Create(context.Background(), "admin-1", leave.CreateLeaveRequestRequest{
		UserID:    "emp-1",
		StartDate: "2024-03-04",
		EndDate:   "2024-03-06",
		Reason:    "mandated leave",
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, 2.0, users.users["emp-1"].AnnualLeaveDays)
	// 5 - 3 = 2 crosses the low-balance threshold.
	require.Len(t, pub.lowBalances, 1)
	assert.Equal(t, 2.0, pub.lowBalances[0])
}

func TestCreateDuplicateRange(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, seedUsers(), &fakePublisher{})

	req := leave.CreateLeaveRequestRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-05",
		Reason:    "family trip",
	}
	_, err := svc.Create(context.Background(), "emp-1", req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "emp-1", req)
	assert.ErrorIs(t, err, leave.ErrDuplicateLeaveRequest)
}

func TestApproveDebitsOwner(t *testing.T) {
	users := seedUsers()
	repo := newFakeLeaveRepo()
	pub := &fakePublisher{}
	svc := newTestService(repo, users, pub)

	created, err := svc.Create(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-06",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	resp, err := svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	assert.Equal(t, 2.0, users.users["emp-1"].AnnualLeaveDays)
	require.Len(t, pub.published, 1)
	assert.Contains(t, pub.published[0], "approved")
	require.Len(t, pub.lowBalances, 1)
}

func TestApproveTwice(t *testing.T) {
	users := seedUsers()
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, users, &fakePublisher{})

	created, err := svc.Create(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-05",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	// No double debit.
	assert.Equal(t, 3.0, users.users["emp-1"].AnnualLeaveDays)
}

func TestRejectKeepsBalance(t *testing.T) {
	users := seedUsers()
	repo := newFakeLeaveRepo()
	pub := &fakePublisher{}
	svc := newTestService(repo, users, pub)

	created, err := svc.Create(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-05",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	resp, err := svc.Reject(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	assert.Equal(t, 5.0, users.users["emp-1"].AnnualLeaveDays)
	require.Len(t, pub.published, 1)
	assert.Contains(t, pub.published[0], "rejected")

	_, err = svc.Approve(context.Background(), created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestListScopedByRole(t *testing.T) {
	users := seedUsers()
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, users, &fakePublisher{})

	_, err := svc.Create(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-05",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	own, err := svc.List(context.Background(), "emp-1", nil)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.List(context.Background(), "admin-1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
