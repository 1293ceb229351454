package apitest

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/google/uuid"
)

type assigneeJSON struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type taskJSON struct {
	ID          string            `json:"_id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	AssignedTo  any               `json:"assignedTo"`
	Priority    models.Priority   `json:"priority"`
	Status      models.TaskStatus `json:"status"`
	Deadline    string            `json:"deadline,omitempty"`
}

// toTaskJSON expands assignedTo to {_id, name} when the employee exists and
// leaves the bare id otherwise. Callers hold f.mu.
func (f *Fake) toTaskJSON(t models.Task) taskJSON {
	out := taskJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
	}
	if t.Deadline != nil {
		out.Deadline = t.Deadline.UTC().Format(time.RFC3339)
	}
	if t.AssignedTo != nil && t.AssignedTo.ID != "" {
		out.AssignedTo = t.AssignedTo.ID
		for _, e := range f.employees {
			if e.ID == t.AssignedTo.ID {
				out.AssignedTo = assigneeJSON{ID: e.ID, Name: e.Name}
				break
			}
		}
	}
	return out
}

func (f *Fake) listTasks(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))

	f.mu.Lock()
	out := make([]taskJSON, 0, len(f.tasks))
	for _, t := range f.tasks {
		if q != "" && !strings.Contains(strings.ToLower(t.Title), q) {
			continue
		}
		out = append(out, f.toTaskJSON(t))
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (f *Fake) createTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		AssignedTo  string          `json:"assignedTo"`
		Priority    models.Priority `json:"priority"`
		Deadline    string          `json:"deadline"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		writeMessage(w, http.StatusBadRequest, "Title is required")
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !req.Priority.Valid() {
		writeMessage(w, http.StatusBadRequest, "Invalid priority")
		return
	}

	t := models.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      models.TaskPending,
	}
	if req.AssignedTo != "" {
		t.AssignedTo = &models.Assignee{ID: req.AssignedTo}
	}
	if req.Deadline != "" {
		d, err := time.Parse(time.DateOnly, req.Deadline)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid deadline")
			return
		}
		t.Deadline = &d
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]models.Task{t}, f.tasks...)
	writeJSON(w, http.StatusCreated, f.toTaskJSON(t))
}

func (f *Fake) updateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req struct {
		Status models.TaskStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Status.Valid() {
		writeMessage(w, http.StatusBadRequest, "Invalid status")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Status = req.Status
			writeJSON(w, http.StatusOK, f.toTaskJSON(f.tasks[i]))
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Task not found")
}

func (f *Fake) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i:i], f.tasks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Task not found")
}
