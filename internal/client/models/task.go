package models

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// ParseTaskStatus accepts the wire names in any case plus the short forms
// "progress", "in-progress" and "done".
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return TaskPending, nil
	case "in progress", "in-progress", "inprogress", "progress":
		return TaskInProgress, nil
	case "completed", "done":
		return TaskCompleted, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTaskState, s)
}

// Priority orders tasks by urgency.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium", "":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// Assignee is an opaque reference to an employee. Name is filled only when
// the service expands the reference; it is display data, not a relationship.
type Assignee struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Task is an assigned unit of work as returned by the service.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssignedTo  *Assignee  `json:"assignedTo,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

func (t Task) Key() string { return t.ID }

// AssigneeLabel is the assignee's display name, its id when unexpanded, or
// "Unassigned".
func (t Task) AssigneeLabel() string {
	switch {
	case t.AssignedTo == nil || t.AssignedTo.ID == "":
		return "Unassigned"
	case t.AssignedTo.Name != "":
		return t.AssignedTo.Name
	default:
		return t.AssignedTo.ID
	}
}

func (t Task) Validate() error {
	if t.ID == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrMissingTitle
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskState, t.Status)
	}
	return nil
}

// TaskDraft is the create body. AssignedTo holds an employee id or "".
// An empty Priority lets the service apply its default.
type TaskDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

func (d TaskDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrMissingTitle
	}
	if d.Priority != "" && !d.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, d.Priority)
	}
	return nil
}
