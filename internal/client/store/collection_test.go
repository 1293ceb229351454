package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/staffdesk/internal/client/api"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listOf(items ...models.Employee) func(context.Context, string) ([]models.Employee, error) {
	return func(context.Context, string) ([]models.Employee, error) {
		return items, nil
	}
}

func seed(t *testing.T, f *fixture, items ...models.Employee) {
	t.Helper()
	f.employees.list = listOf(items...)
	_, err := f.store.Employees.FetchAll(context.Background(), "")
	require.NoError(t, err)
}

func TestFetchAll_ReplacesItemsAndGoesIdle(t *testing.T) {
	f := newFixture(t, "")
	f.employees.list = listOf(ann())

	got, err := f.store.Employees.FetchAll(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []models.Employee{ann()}, got)

	st := f.store.Employees.State()
	if diff := cmp.Diff([]models.Employee{ann()}, st.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, CollectionIdle, st.Status)
	assert.Empty(t, st.LastError)

	snaps := f.rec.all()
	require.Len(t, snaps, 2)
	assert.Equal(t, CollectionLoading, snaps[0].Employees.Status)
	assert.Equal(t, CollectionIdle, snaps[1].Employees.Status)
}

func TestFetchAll_PassesFilter(t *testing.T) {
	f := newFixture(t, "")
	var got string
	f.employees.list = func(_ context.Context, filter string) ([]models.Employee, error) {
		got = filter
		return nil, nil
	}

	items, err := f.store.Employees.FetchAll(context.Background(), "ann")
	require.NoError(t, err)
	assert.Equal(t, "ann", got)
	assert.NotNil(t, items)
	assert.Empty(t, f.store.Employees.State().Items)
}

func TestFetchAll_FailureKeepsStaleItems(t *testing.T) {
	f := newFixture(t, "")
	seed(t, f, ann(), bob())

	f.employees.list = func(context.Context, string) ([]models.Employee, error) {
		return nil, &api.Error{Message: "Server down", StatusCode: 503}
	}
	_, err := f.store.Employees.FetchAll(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnavailable)

	st := f.store.Employees.State()
	assert.Equal(t, []models.Employee{ann(), bob()}, st.Items)
	assert.Equal(t, CollectionError, st.Status)
	assert.Equal(t, "Server down", st.LastError)

	// the next fetch clears the error while loading
	f.employees.list = listOf(bob())
	_, err = f.store.Employees.FetchAll(context.Background(), "")
	require.NoError(t, err)

	snaps := f.rec.all()
	loading := snaps[len(snaps)-2].Employees
	assert.Equal(t, CollectionLoading, loading.Status)
	assert.Empty(t, loading.LastError)
	assert.Equal(t, []models.Employee{ann(), bob()}, loading.Items, "items stay visible while loading")
	assert.Equal(t, CollectionIdle, f.store.Employees.State().Status)
}

func TestFetchAll_FailureWithoutMessageUsesFallback(t *testing.T) {
	f := newFixture(t, "")
	f.tasks.list = func(context.Context, string) ([]models.Task, error) {
		return nil, &api.Error{StatusCode: 500}
	}

	_, err := f.store.Tasks.FetchAll(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "failed to fetch tasks", f.store.Tasks.State().LastError)
}

func TestFetchAll_DoesNotMerge(t *testing.T) {
	f := newFixture(t, "")
	seed(t, f, ann())

	f.employees.create = func(context.Context, models.EmployeeDraft) (models.Employee, error) {
		return cat(), nil
	}
	_, err := f.store.Employees.Create(context.Background(), cat().Draft())
	require.NoError(t, err)

	seed(t, f, bob())
	assert.Equal(t, []models.Employee{bob()}, f.store.Employees.State().Items)
}

func TestCreate_PrependsWithoutTouchingStatus(t *testing.T) {
	f := newFixture(t, "")
	seed(t, f, ann(), bob())
	before := f.store.Snapshot()
	n := f.rec.count()

	var sent models.EmployeeDraft
	f.employees.create = func(_ context.Context, d models.EmployeeDraft) (models.Employee, error) {
		sent = d
		return cat(), nil
	}

	got, err := f.store.Employees.Create(context.Background(), cat().Draft())
	require.NoError(t, err)
	assert.Equal(t, cat(), got)
	assert.Equal(t, cat().Draft(), sent)

	st := f.store.Employees.State()
	assert.Equal(t, []models.Employee{cat(), ann(), bob()}, st.Items)
	assert.Equal(t, CollectionIdle, st.Status)
	assert.Equal(t, n+1, f.rec.count(), "one notification, no loading transition")

	// earlier snapshots are not rewritten
	assert.Equal(t, []models.Employee{ann(), bob()}, before.Employees.Items)
}

func TestCreate_FailureIsReturnedNotStored(t *testing.T) {
	f := newFixture(t, "")
	seed(t, f, ann())
	n := f.rec.count()

	rejected := &api.Error{Message: "Employee with this email already exists", StatusCode: 409}
	f.employees.create = func(context.Context, models.EmployeeDraft) (models.Employee, error) {
		return models.Employee{}, rejected
	}

	_, err := f.store.Employees.Create(context.Background(), ann().Draft())
	require.ErrorIs(t, err, rejected)
	assert.ErrorIs(t, err, api.ErrValidation)

	st := f.store.Employees.State()
	assert.Equal(t, []models.Employee{ann()}, st.Items)
	assert.Equal(t, CollectionIdle, st.Status)
	assert.Empty(t, st.LastError)
	assert.Equal(t, n+1, f.rec.count(), "failed settlement still notifies once")
}

func TestCreateTask_ServerRecordGoesFirst(t *testing.T) {
	f := newFixture(t, "")
	existing := models.Task{ID: "1", Title: "Old", Priority: models.PriorityLow, Status: models.TaskCompleted}
	f.tasks.list = func(context.Context, string) ([]models.Task, error) {
		return []models.Task{existing}, nil
	}
	_, err := f.store.Tasks.FetchAll(context.Background(), "")
	require.NoError(t, err)

	f.tasks.create = func(_ context.Context, d models.TaskDraft) (models.Task, error) {
		return models.Task{ID: "9", Title: d.Title, Status: models.TaskPending, Priority: models.PriorityMedium}, nil
	}
	_, err = f.store.Tasks.Create(context.Background(), models.TaskDraft{Title: "Write report"})
	require.NoError(t, err)

	items := f.store.Tasks.State().Items
	require.Len(t, items, 2)
	assert.Equal(t, "9", items[0].ID)
	assert.Equal(t, models.TaskPending, items[0].Status)
	assert.Equal(t, models.PriorityMedium, items[0].Priority)
	assert.Equal(t, existing, items[1])
}

func TestUpdate_PreservesPosition(t *testing.T) {
	f := newFixture(t, "")
	seed(t, f, ann(), bob(), cat())

	renamed := bob()
	renamed.Name = "Robert"
	var gotID string
	f.employees.update = func(_ context.Context, id string, d models.EmployeeDraft) (models.Employee, error) {
		gotID = id
		return renamed, nil
	}

	_, err := f.store.Employees.Update(context.Background(), "2", renamed.Draft())
	require.NoError(t, err)
	assert.Equal(t, "2", gotID)

	want := []models.Employee{ann(), renamed, cat()}
	if diff := cmp.Diff(want, f.store.Employees.State().Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_AbsentIDIsNoop(t *testing.T) {
	f := newFixture(t, "")
	seed(t, f, ann())

	f.employees.update = func(context.Context, string, models.EmployeeDraft) (models.Employee, error) {
		return bob(), nil
	}
	_, err := f.store.Employees.Update(context.Background(), "2", bob().Draft())
	require.NoError(t, err)
	assert.Equal(t, []models.Employee{ann()}, f.store.Employees.State().Items)
}

func TestUpdate_FailureLeavesItems(t *testing.T) {
	f := newFixture(t, "")
	seed(t, f, ann())
	n := f.rec.count()

	f.employees.update = func(context.Context, string, models.EmployeeDraft) (models.Employee, error) {
		return models.Employee{}, &api.Error{Message: "Employee not found", StatusCode: 404}
	}
	_, err := f.store.Employees.Update(context.Background(), "1", ann().Draft())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNotFound)
	assert.Equal(t, []models.Employee{ann()}, f.store.Employees.State().Items)
	assert.Empty(t, f.store.Employees.State().LastError)
	assert.Equal(t, n+1, f.rec.count())
}

func TestUpdateTaskStatus(t *testing.T) {
	f := newFixture(t, "")
	task := models.Task{ID: "9", Title: "Write report", Priority: models.PriorityMedium, Status: models.TaskPending}
	f.tasks.list = func(context.Context, string) ([]models.Task, error) {
		return []models.Task{task}, nil
	}
	_, err := f.store.Tasks.FetchAll(context.Background(), "")
	require.NoError(t, err)

	f.tasks.update = func(_ context.Context, id string, s models.TaskStatus) (models.Task, error) {
		out := task
		out.Status = s
		return out, nil
	}
	got, err := f.store.Tasks.Update(context.Background(), "9", models.TaskCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, got.Status)
	assert.Equal(t, models.TaskCompleted, f.store.Tasks.State().Items[0].Status)
}

func TestRemove(t *testing.T) {
	f := newFixture(t, "")
	seed(t, f, ann(), bob(), cat())

	var deleted []string
	f.employees.del = func(_ context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}

	require.NoError(t, f.store.Employees.Remove(context.Background(), "2"))
	assert.Equal(t, []models.Employee{ann(), cat()}, f.store.Employees.State().Items)

	// absent id: server agrees, list unchanged
	require.NoError(t, f.store.Employees.Remove(context.Background(), "2"))
	assert.Equal(t, []models.Employee{ann(), cat()}, f.store.Employees.State().Items)
	assert.Equal(t, []string{"2", "2"}, deleted)
}

func TestRemove_FailureLeavesItems(t *testing.T) {
	f := newFixture(t, "")
	seed(t, f, ann())

	boom := errors.New("connection reset")
	f.employees.del = func(context.Context, string) error { return boom }

	err := f.store.Employees.Remove(context.Background(), "1")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []models.Employee{ann()}, f.store.Employees.State().Items)
}

func TestCollectionState_Find(t *testing.T) {
	st := CollectionState[models.Employee]{Items: []models.Employee{ann(), bob()}}

	got, ok := st.Find("2")
	require.True(t, ok)
	assert.Equal(t, bob(), got)

	_, ok = st.Find("nope")
	assert.False(t, ok)
}
