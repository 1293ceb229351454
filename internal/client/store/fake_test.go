package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/staffdesk/internal/client/api"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/repositories/credentials"
)

// fakeRemote answers from its func fields; a nil field fails the call.
type fakeRemote[T Entity, D any, P any] struct {
	list   func(ctx context.Context, filter string) ([]T, error)
	create func(ctx context.Context, draft D) (T, error)
	update func(ctx context.Context, id string, patch P) (T, error)
	del    func(ctx context.Context, id string) error
}

var errNotStubbed = errors.New("not stubbed")

func (f *fakeRemote[T, D, P]) List(ctx context.Context, filter string) ([]T, error) {
	if f.list == nil {
		return nil, errNotStubbed
	}
	return f.list(ctx, filter)
}

func (f *fakeRemote[T, D, P]) Create(ctx context.Context, draft D) (T, error) {
	if f.create == nil {
		var zero T
		return zero, errNotStubbed
	}
	return f.create(ctx, draft)
}

func (f *fakeRemote[T, D, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	if f.update == nil {
		var zero T
		return zero, errNotStubbed
	}
	return f.update(ctx, id, patch)
}

func (f *fakeRemote[T, D, P]) Delete(ctx context.Context, id string) error {
	if f.del == nil {
		return errNotStubbed
	}
	return f.del(ctx, id)
}

type fakeAuth struct {
	login func(ctx context.Context, email, password string) (models.LoginResult, error)
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	return f.login(ctx, email, password)
}

// listResult is what a gated List call resolves with.
type listResult[T any] struct {
	items []T
	err   error
}

// gatedList returns a List func that parks every call until the test sends
// its result on the channel received from calls.
func gatedList[T any](calls chan<- chan listResult[T]) func(ctx context.Context, filter string) ([]T, error) {
	return func(ctx context.Context, _ string) ([]T, error) {
		gate := make(chan listResult[T])
		calls <- gate
		select {
		case r := <-gate:
			return r.items, r.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// recorder collects every snapshot delivered to it.
type recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recorder) listen(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func (r *recorder) all() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Snapshot, len(r.snaps))
	copy(out, r.snaps)
	return out
}

type fixture struct {
	store     *Store
	auth      *fakeAuth
	employees *fakeRemote[models.Employee, models.EmployeeDraft, models.EmployeeDraft]
	tasks     *fakeRemote[models.Task, models.TaskDraft, models.TaskStatus]
	creds     *credentials.MemoryStore
	rec       *recorder
}

func newFixture(t *testing.T, persisted string) *fixture {
	t.Helper()
	f := &fixture{
		auth: &fakeAuth{login: func(context.Context, string, string) (models.LoginResult, error) {
			return models.LoginResult{}, &api.Error{Message: "Invalid credentials", StatusCode: 401}
		}},
		employees: &fakeRemote[models.Employee, models.EmployeeDraft, models.EmployeeDraft]{},
		tasks:     &fakeRemote[models.Task, models.TaskDraft, models.TaskStatus]{},
		creds:     credentials.NewMemoryStore(persisted),
		rec:       &recorder{},
	}
	f.store = New(context.Background(), Deps{
		Auth:        f.auth,
		Employees:   f.employees,
		Tasks:       f.tasks,
		Credentials: f.creds,
	})
	unsubscribe := f.store.Subscribe(f.rec.listen)
	t.Cleanup(func() {
		f.store.Wait()
		unsubscribe()
	})
	return f
}

func ann() models.Employee {
	return models.Employee{ID: "1", Name: "Ann", Email: "ann@x.com", Department: "Ops", Status: models.EmployeeActive}
}

func bob() models.Employee {
	return models.Employee{ID: "2", Name: "Bob", Email: "bob@x.com", Department: "Eng", Status: models.EmployeeActive}
}

func cat() models.Employee {
	return models.Employee{ID: "3", Name: "Cat", Email: "cat@x.com", Department: "HR", Phone: "555", Status: models.EmployeeInactive}
}
