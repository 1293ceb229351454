package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
)

type (
	EmployeeRemote = Remote[models.Employee, models.EmployeeDraft, models.EmployeeDraft]
	TaskRemote     = Remote[models.Task, models.TaskDraft, models.TaskStatus]

	Employees = Collection[models.Employee, models.EmployeeDraft, models.EmployeeDraft]
	Tasks     = Collection[models.Task, models.TaskDraft, models.TaskStatus]
)

// Deps are the collaborators of a Store. Credentials and Logger may be nil.
type Deps struct {
	Auth        Authenticator
	Employees   EmployeeRemote
	Tasks       TaskRemote
	Credentials credentials.Store
	Logger      logging.Logger
}

// Store composes the session and both collections into one read model.
type Store struct {
	hub *hub
	log logging.Logger
	wg  sync.WaitGroup

	Auth      *Session
	Employees *Employees
	Tasks     *Tasks
}

// New builds a Store and restores the persisted credential, if any.
func New(ctx context.Context, deps Deps) *Store {
	if deps.Credentials == nil {
		deps.Credentials = credentials.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.Nop()
	}

	h := newHub(initialSnapshot())
	s := &Store{hub: h, log: deps.Logger}

	s.Auth = newSession(ctx, h, deps.Auth, deps.Credentials, deps.Logger.With("store", "auth"))
	s.Employees = newCollection("employees", h, deps.Employees, func(st *Snapshot) *CollectionState[models.Employee] {
		return &st.Employees
	})
	s.Tasks = newCollection("tasks", h, deps.Tasks, func(st *Snapshot) *CollectionState[models.Task] {
		return &st.Tasks
	})
	return s
}

// Snapshot returns the current read model.
func (s *Store) Snapshot() Snapshot {
	return s.hub.snapshot()
}

// Subscribe registers fn for every subsequent commit. The returned function
// unsubscribes; calling it more than once is harmless.
func (s *Store) Subscribe(fn Listener) func() {
	return s.hub.subscribe(fn)
}

// Dispatch runs op on its own goroutine and returns a handle to its result.
func (s *Store) Dispatch(ctx context.Context, op Operation) *Pending {
	p := &Pending{op: op.Name, done: make(chan struct{})}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(p.done)

		p.value, p.err = op.run(ctx, s)
		if p.err != nil {
			s.log.Warn(ctx, "operation failed", "op", op.Name, "err", p.err)
			return
		}
		s.log.Debug(ctx, "operation settled", "op", op.Name)
	}()

	return p
}

// Wait blocks until every dispatched operation has settled.
func (s *Store) Wait() {
	s.wg.Wait()
}

// Pending is the awaitable result of a dispatched operation.
type Pending struct {
	op    string
	done  chan struct{}
	value any
	err   error
}

func (p *Pending) Op() string { return p.op }

// Done is closed once the operation has settled.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until settlement and returns the operation's result.
func (p *Pending) Wait() (any, error) {
	<-p.done
	return p.value, p.err
}

// ErrResultType is returned by Await when an operation settled with a value
// of another type.
var ErrResultType = errors.New("unexpected result type")

// Await waits for p and asserts its value to T. Operations that settle
// without a value yield the zero T.
func Await[T any](p *Pending) (T, error) {
	var zero T
	v, err := p.Wait()
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s settled with %T", ErrResultType, p.op, v)
	}
	return t, nil
}
