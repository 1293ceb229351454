package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
)

// The service keys records by "_id"; "id" is accepted as a fallback.
func pickID(underscore, plain string) string {
	if underscore != "" {
		return underscore
	}
	return plain
}

type employeeWire struct {
	MongoID    string                `json:"_id"`
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Department string                `json:"department"`
	Phone      string                `json:"phone"`
	Status     models.EmployeeStatus `json:"status"`
}

func (w employeeWire) model() (models.Employee, error) {
	e := models.Employee{
		ID:         pickID(w.MongoID, w.ID),
		Name:       w.Name,
		Email:      w.Email,
		Department: w.Department,
		Phone:      w.Phone,
		Status:     w.Status,
	}
	if err := e.Validate(); err != nil {
		return models.Employee{}, invalidResponse("employee", err)
	}
	return e, nil
}

// assigneeRef decodes assignedTo given either as a bare id or expanded to
// {_id, name}.
type assigneeRef struct {
	ref *models.Assignee
}

func (a *assigneeRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		a.ref = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		if id != "" {
			a.ref = &models.Assignee{ID: id}
		}
		return nil
	}
	var obj struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	if id := pickID(obj.MongoID, obj.ID); id != "" {
		a.ref = &models.Assignee{ID: id, Name: obj.Name}
	}
	return nil
}

var deadlineLayouts = []string{time.RFC3339Nano, time.RFC3339, time.DateOnly}

// wireDate decodes an optional date written as RFC 3339 or YYYY-MM-DD.
type wireDate struct {
	t *time.Time
}

func (d *wireDate) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		d.t = nil
		return nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			d.t = &t
			return nil
		}
	}
	return fmt.Errorf("unrecognised date %q", *s)
}

type taskWire struct {
	MongoID     string            `json:"_id"`
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	AssignedTo  assigneeRef       `json:"assignedTo"`
	Priority    models.Priority   `json:"priority"`
	Status      models.TaskStatus `json:"status"`
	Deadline    wireDate          `json:"deadline"`
}

func (w taskWire) model() (models.Task, error) {
	t := models.Task{
		ID:          pickID(w.MongoID, w.ID),
		Title:       w.Title,
		Description: w.Description,
		AssignedTo:  w.AssignedTo.ref,
		Priority:    w.Priority,
		Status:      w.Status,
		Deadline:    w.Deadline.t,
	}
	if err := t.Validate(); err != nil {
		return models.Task{}, invalidResponse("task", err)
	}
	return t, nil
}

type principalWire struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

type loginWire struct {
	Token string         `json:"token"`
	User  *principalWire `json:"user"`
}

func (w loginWire) model() (models.LoginResult, error) {
	if w.Token == "" {
		return models.LoginResult{}, invalidResponse("login", models.ErrMissingToken)
	}
	res := models.LoginResult{Token: w.Token}
	if w.User != nil {
		res.User = &models.Principal{
			ID:    pickID(w.User.MongoID, w.User.ID),
			Name:  w.User.Name,
			Email: w.User.Email,
			Role:  w.User.Role,
		}
	}
	return res, nil
}

// taskDraftWire sends the deadline as a plain date, the way the service's
// form posts it.
type taskDraftWire struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	AssignedTo  string          `json:"assignedTo,omitempty"`
	Priority    models.Priority `json:"priority,omitempty"`
	Deadline    string          `json:"deadline,omitempty"`
}

func newTaskDraftWire(d models.TaskDraft) taskDraftWire {
	w := taskDraftWire{
		Title:       d.Title,
		Description: d.Description,
		AssignedTo:  d.AssignedTo,
		Priority:    d.Priority,
	}
	if d.Deadline != nil {
		w.Deadline = d.Deadline.Format(time.DateOnly)
	}
	return w
}
