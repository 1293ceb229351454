// Package apitest is an in-memory implementation of the staffdesk REST
// service. Tests use it through NewServer; cmd/fakeapi serves it for local
// runs of the console.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/google/uuid"
)

type user struct {
	password  string
	principal models.Principal
}

type failure struct {
	status  int
	message string
}

// Fake is the service handler. All methods are safe for concurrent use.
type Fake struct {
	mux    *http.ServeMux
	secret []byte

	mu        sync.Mutex
	users     map[string]user
	employees []models.Employee
	tasks     []models.Task
	failNext  map[string]failure
	requests  []Request

	// OmitUser drops the "user" field from login responses.
	OmitUser bool
}

// Request is a recorded inbound call.
type Request struct {
	Pattern       string
	Path          string
	Authorization string
	RequestID     string
}

// New returns an empty service signing tokens with secret.
func New(secret []byte) *Fake {
	f := &Fake{
		mux:      http.NewServeMux(),
		secret:   secret,
		users:    make(map[string]user),
		failNext: make(map[string]failure),
	}

	f.mux.HandleFunc("POST /auth/login", f.login)
	f.mux.HandleFunc("GET /employees", f.authed(f.listEmployees))
	f.mux.HandleFunc("POST /employees", f.authed(f.createEmployee))
	f.mux.HandleFunc("PUT /employees/{id}", f.authed(f.updateEmployee))
	f.mux.HandleFunc("DELETE /employees/{id}", f.authed(f.deleteEmployee))
	f.mux.HandleFunc("GET /tasks", f.authed(f.listTasks))
	f.mux.HandleFunc("POST /tasks", f.authed(f.createTask))
	f.mux.HandleFunc("PATCH /tasks/{id}/status", f.authed(f.updateTaskStatus))
	f.mux.HandleFunc("DELETE /tasks/{id}", f.authed(f.deleteTask))
	f.mux.HandleFunc("GET /dashboard", f.authed(f.dashboard))

	return f
}

// NewServer starts the fake service on a loopback listener that is closed
// when the test ends.
func NewServer(tb testing.TB) (*httptest.Server, *Fake) {
	tb.Helper()
	f := New([]byte("apitest-secret"))
	srv := httptest.NewServer(f)
	tb.Cleanup(srv.Close)
	return srv, f
}

func (f *Fake) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, pattern := f.mux.Handler(r)

	f.mu.Lock()
	f.requests = append(f.requests, Request{
		Pattern:       pattern,
		Path:          r.URL.RequestURI(),
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get("X-Request-ID"),
	})
	fail, ok := f.failNext[pattern]
	if ok {
		delete(f.failNext, pattern)
	}
	f.mu.Unlock()

	if ok {
		writeMessage(w, fail.status, fail.message)
		return
	}
	f.mux.ServeHTTP(w, r)
}

// AddUser registers credentials accepted by POST /auth/login.
func (f *Fake) AddUser(email, password string, p models.Principal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Email == "" {
		p.Email = email
	}
	f.users[email] = user{password: password, principal: p}
}

// SeedEmployees replaces the roster. Employees without an ID get one.
func (f *Fake) SeedEmployees(list ...models.Employee) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees = f.employees[:0]
	for _, e := range list {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		f.employees = append(f.employees, e)
	}
}

// SeedTasks replaces the task list. Tasks without an ID get one.
func (f *Fake) SeedTasks(list ...models.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = f.tasks[:0]
	for _, t := range list {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		f.tasks = append(f.tasks, t)
	}
}

// FailNext makes the next call matching pattern (e.g. "GET /employees")
// answer status with {"message": message}.
func (f *Fake) FailNext(pattern string, status int, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext[pattern] = failure{status: status, message: message}
}

// Requests returns the calls received so far.
func (f *Fake) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.requests...)
}

// Employees returns the server-side roster.
func (f *Fake) Employees() []models.Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Employee(nil), f.employees...)
}

// Tasks returns the server-side task list.
func (f *Fake) Tasks() []models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Task(nil), f.tasks...)
}

func (f *Fake) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeMessage(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		if _, err := ParseToken(token, f.secret); err != nil {
			writeMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}
		next(w, r)
	}
}

func (f *Fake) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Malformed request")
		return
	}

	f.mu.Lock()
	u, ok := f.users[req.Email]
	omitUser := f.OmitUser
	f.mu.Unlock()

	if !ok || u.password != req.Password {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := GenerateToken(u.principal.ID, u.principal.Email, f.secret, time.Hour)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := map[string]any{"token": token}
	if !omitUser {
		resp["user"] = map[string]string{
			"_id":   u.principal.ID,
			"name":  u.principal.Name,
			"email": u.principal.Email,
			"role":  u.principal.Role,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (f *Fake) dashboard(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats := models.DashboardStats{TotalEmployees: len(f.employees), TotalTasks: len(f.tasks)}
	for _, t := range f.tasks {
		switch t.Status {
		case models.TaskCompleted:
			stats.CompletedTasks++
		case models.TaskPending:
			stats.PendingTasks++
		}
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
