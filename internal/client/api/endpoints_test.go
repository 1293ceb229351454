package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/apitest"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loggedIn returns a client holding a valid credential for the fake service.
func loggedIn(t *testing.T) (*Client, *apitest.Fake) {
	t.Helper()
	srv, fake := apitest.NewServer(t)
	fake.AddUser("admin@x.com", "pw", models.Principal{Name: "Admin", Role: "admin"})

	c := NewClient(srv.URL)
	res, err := c.Auth().Login(context.Background(), "admin@x.com", "pw")
	require.NoError(t, err)
	c.SetTokenSource(TokenFunc(func() string { return res.Token }))
	return c, fake
}

func TestAuthLogin(t *testing.T) {
	srv, fake := apitest.NewServer(t)
	fake.AddUser("admin@x.com", "pw", models.Principal{ID: "u1", Name: "Admin"})
	c := NewClient(srv.URL)
	ctx := context.Background()

	res, err := c.Auth().Login(ctx, "admin@x.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, "u1", res.User.ID)
	assert.Equal(t, "admin@x.com", res.User.Email)

	_, err = c.Auth().Login(ctx, "bad@x.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthLogin_UserOmitted(t *testing.T) {
	srv, fake := apitest.NewServer(t)
	fake.AddUser("a@x.com", "pw", models.Principal{})
	fake.OmitUser = true

	res, err := NewClient(srv.URL).Auth().Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Nil(t, res.User)
}

func TestAuthLogin_MissingTokenIsInvalid(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"_id":"1"}}`))
	})
	_, err := c.Auth().Login(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid login in response")
}

func TestEmployees_CRUD(t *testing.T) {
	c, fake := loggedIn(t)
	ctx := context.Background()
	fake.SeedEmployees(models.Employee{ID: "1", Name: "Ann", Email: "ann@x.com", Department: "Ops", Status: models.EmployeeActive})

	list, err := c.Employees().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].ID)

	created, err := c.Employees().Create(ctx, models.EmployeeDraft{
		Name: "Bob", Email: "bob@x.com", Department: "Eng", Phone: "555", Status: models.EmployeeActive,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "555", created.Phone)

	filtered, err := c.Employees().List(ctx, "eng")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, created.ID, filtered[0].ID)

	d := created.Draft()
	d.Status = models.EmployeeInactive
	updated, err := c.Employees().Update(ctx, created.ID, d)
	require.NoError(t, err)
	assert.Equal(t, models.EmployeeInactive, updated.Status)
	assert.Equal(t, created.ID, updated.ID)

	require.NoError(t, c.Employees().Delete(ctx, created.ID))
	assert.Len(t, fake.Employees(), 1)

	err = c.Employees().Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Employee not found", err.Error())
}

func TestEmployees_ListAlwaysSendsQuery(t *testing.T) {
	c, fake := loggedIn(t)

	_, err := c.Employees().List(context.Background(), "")
	require.NoError(t, err)
	_, err = c.Employees().List(context.Background(), "ann smith")
	require.NoError(t, err)

	reqs := fake.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "/employees?q=", reqs[1].Path)
	assert.Equal(t, "/employees?q=ann+smith", reqs[2].Path)
	assert.Contains(t, reqs[2].Authorization, "Bearer ")
}

func TestEmployees_CreateRejected(t *testing.T) {
	c, _ := loggedIn(t)

	_, err := c.Employees().Create(context.Background(), models.EmployeeDraft{Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Please provide all required fields", err.Error())
}

func TestEmployees_InvalidRecordRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"1","name":"Ann","email":"a@x","department":"Ops","status":"Retired"}]`))
	})
	_, err := c.Employees().List(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid employee in response")
}

func TestEmployees_AcceptsPlainID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"7","name":"Ann","email":"a@x","department":"Ops","status":"Active"}]`))
	})
	list, err := c.Employees().List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "7", list[0].ID)
}

func TestTasks_Lifecycle(t *testing.T) {
	c, fake := loggedIn(t)
	ctx := context.Background()
	fake.SeedEmployees(models.Employee{ID: "e1", Name: "Ann", Email: "ann@x.com", Department: "Ops", Status: models.EmployeeActive})

	deadline := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	created, err := c.Tasks().Create(ctx, models.TaskDraft{Title: "Write report", AssignedTo: "e1", Deadline: &deadline})
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, created.Status)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	require.NotNil(t, created.AssignedTo)
	assert.Equal(t, "Ann", created.AssignedTo.Name)
	require.NotNil(t, created.Deadline)
	assert.True(t, deadline.Equal(*created.Deadline))

	updated, err := c.Tasks().Update(ctx, created.ID, models.TaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, updated.Status)

	list, err := c.Tasks().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.TaskInProgress, list[0].Status)

	require.NoError(t, c.Tasks().Delete(ctx, created.ID))
	assert.Empty(t, fake.Tasks())

	_, err = c.Tasks().Update(ctx, created.ID, models.TaskCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTasks_AssigneeShapes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"_id":"1","title":"a","priority":"Low","status":"Pending","assignedTo":"e9"},
			{"_id":"2","title":"b","priority":"High","status":"Completed","assignedTo":{"_id":"e1","name":"Ann"}},
			{"_id":"3","title":"c","priority":"Medium","status":"In Progress","assignedTo":null,"deadline":"2026-10-20"},
			{"_id":"4","title":"d","priority":"Medium","status":"Pending","deadline":"2026-10-20T00:00:00.000Z"}
		]`))
	})

	list, err := c.Tasks().List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, &models.Assignee{ID: "e9"}, list[0].AssignedTo)
	assert.Equal(t, &models.Assignee{ID: "e1", Name: "Ann"}, list[1].AssignedTo)
	assert.Nil(t, list[2].AssignedTo)
	require.NotNil(t, list[2].Deadline)
	assert.Equal(t, 20, list[2].Deadline.Day())
	require.NotNil(t, list[3].Deadline)
	assert.Nil(t, list[3].AssignedTo)
}

func TestTasks_UnknownStatusRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"1","title":"a","priority":"Low","status":"Blocked"}`))
	})
	_, err := c.Tasks().Update(context.Background(), "1", models.TaskCompleted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task in response")
}

func TestDashboard(t *testing.T) {
	c, fake := loggedIn(t)
	fake.SeedTasks(
		models.Task{Title: "a", Priority: models.PriorityLow, Status: models.TaskPending},
		models.Task{Title: "b", Priority: models.PriorityLow, Status: models.TaskCompleted},
		models.Task{Title: "c", Priority: models.PriorityLow, Status: models.TaskInProgress},
	)

	stats, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 1, stats.PendingTasks)
	assert.Equal(t, 0, stats.TotalEmployees)
}

func TestProtectedCallWithoutCredential(t *testing.T) {
	srv, _ := apitest.NewServer(t)
	_, err := NewClient(srv.URL).Tasks().List(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Not authorized, no token", err.Error())
}
