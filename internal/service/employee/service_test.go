package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/employee"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/notification"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/sse"
)

type nopTxManager struct{}

func (nopTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users  map[string]*user.User
	nextID int
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return *u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return *u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByIDForUpdate(ctx context.Context, id string) (user.User, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	for _, u := range f.users {
		if u.Username == newUser.Username {
			return user.User{}, user.ErrUsernameExists
		}
		if u.Email == newUser.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.nextID++
	newUser.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[newUser.ID] = &newUser
	return newUser, nil
}

func (f *fakeUserRepo) Update(_ context.Context, req user.UpdateUserRequest) error {
	u, ok := f.users[req.ID]
	if !ok {
		return user.ErrUserNotFound
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
	if req.PasswordHash != nil {
		u.PasswordHash = req.PasswordHash
	}
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
	var out []user.User
	for _, u := range f.users {
		if u.IsEmployee {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListSuperusers(_ context.Context) ([]user.User, error) {
	return nil, nil
}

type fakePublisher struct {
	lowBalances []float64
}

func (f *fakePublisher) Publish(_ string, _ notification.Type, _ string) {}

func (f *fakePublisher) NotifyLateArrival(_ string, _ int) {}

func (f *fakePublisher) NotifyLowBalance(_ string, remainingDays float64) {
	f.lowBalances = append(f.lowBalances, remainingDays)
}

func (f *fakePublisher) Subscribe(_ string) (<-chan sse.Event, func()) {
	ch := make(chan sse.Event)
	return ch, func() {}
}

func (f *fakePublisher) Stop() {}

func newTestService() (employee.EmployeeService, *fakeUserRepo, *fakePublisher) {
	users := &fakeUserRepo{users: map[string]*user.User{}}
	pub := &fakePublisher{}
	return NewEmployeeService(nopTxManager{}, users, pub), users, pub
}

func TestCreateEmployee(t *testing.T) {
	svc, users, _ := newTestService()

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Password:  "changeme123",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsEmployee)
	assert.Equal(t, user.DefaultAnnualLeaveDays, resp.AnnualLeaveDays)

	stored := users.users[resp.ID]
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("changeme123")))
}

func TestCreateEmployeeDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService()

	req := employee.CreateEmployeeRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "changeme123",
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	req.Email = "other@example.com"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUpdateEmployeePartial(t *testing.T) {
	svc, users, _ := newTestService()
	users.users["user-1"] = &user.User{
		ID:              "user-1",
		Username:        "jdoe",
		Email:           "jdoe@example.com",
		FirstName:       "Jane",
		IsEmployee:      true,
		AnnualLeaveDays: 10,
	}

	email := "jane.doe@example.com"
	resp, err := svc.Update(context.Background(), "user-1", employee.UpdateEmployeeRequest{
		Email: &email,
	})
	require.NoError(t, err)

	assert.Equal(t, email, resp.Email)
	// Untouched fields stay as they were.
	assert.Equal(t, "Jane", users.users["user-1"].FirstName)
	assert.Equal(t, 10.0, users.users["user-1"].AnnualLeaveDays)
}

func TestUpdateBalanceRunsLatch(t *testing.T) {
	svc, users, pub := newTestService()
	users.users["user-1"] = &user.User{
		ID:              "user-1",
		Username:        "jdoe",
		IsEmployee:      true,
		AnnualLeaveDays: 10,
	}

	low := 2.5
	_, err := svc.Update(context.Background(), "user-1", employee.UpdateEmployeeRequest{
		AnnualLeaveDays: &low,
	})
	require.NoError(t, err)

	require.Len(t, pub.lowBalances, 1)
	assert.Equal(t, 2.5, pub.lowBalances[0])
	assert.True(t, users.users["user-1"].LowLeaveNotified)

	// Correcting the balance back up re-arms the latch; dropping it again
	// alerts again.
	restored := 8.0
	_, err = svc.Update(context.Background(), "user-1", employee.UpdateEmployeeRequest{
		AnnualLeaveDays: &restored,
	})
	require.NoError(t, err)
	assert.False(t, users.users["user-1"].LowLeaveNotified)

	_, err = svc.Update(context.Background(), "user-1", employee.UpdateEmployeeRequest{
		AnnualLeaveDays: &low,
	})
	require.NoError(t, err)
	assert.Len(t, pub.lowBalances, 2)
}

func TestUpdateMissingEmployee(t *testing.T) {
	svc, _, _ := newTestService()

	email := "ghost@example.com"
	_, err := svc.Update(context.Background(), "missing", employee.UpdateEmployeeRequest{Email: &email})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetAndList(t *testing.T) {
	svc, users, _ := newTestService()
	users.users["user-1"] = &user.User{ID: "user-1", Username: "jdoe", IsEmployee: true}
	users.users["admin-1"] = &user.User{ID: "admin-1", Username: "admin", IsStaff: true}

	got, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", got.Username)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	employees, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}
