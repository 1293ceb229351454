package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/client/api"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/store"
)

// ListTasks fetches and prints the task list.
func (a *App) ListTasks(ctx context.Context) error {
	if _, err := a.store.Dispatch(ctx, store.FetchTasks("")).Wait(); err != nil {
		return err
	}
	a.println(renderTasks(a.store.Snapshot().Tasks.Items))
	return nil
}

// AddTask collects a new task and creates it. Assignee, priority and
// deadline are optional.
func (a *App) AddTask(ctx context.Context) error {
	draft, err := a.taskForm()
	if err != nil {
		a.println(renderError(err.Error()))
		return err
	}

	created, err := store.Await[models.Task](a.store.Dispatch(ctx, store.CreateTask(draft)))
	if err != nil {
		a.println(renderError(api.Message(err, "Failed to create task")))
		return err
	}
	a.println(renderOK(fmt.Sprintf("Task %q created (id %s)", created.Title, created.ID)))
	return nil
}

// SetTaskStatus moves task id to status, e.g. "progress" or "Completed".
func (a *App) SetTaskStatus(ctx context.Context, id, status string) error {
	s, err := models.ParseTaskStatus(status)
	if err != nil {
		a.println(renderError(err.Error()))
		return err
	}

	updated, err := store.Await[models.Task](a.store.Dispatch(ctx, store.UpdateTaskStatus(id, s)))
	if err != nil {
		a.println(renderError(api.Message(err, "Failed to update task")))
		return err
	}
	a.println(renderOK(fmt.Sprintf("Task %q is now %s", updated.Title, updated.Status)))
	return nil
}

// RemoveTask deletes task id after confirmation.
func (a *App) RemoveTask(ctx context.Context, id string) error {
	if !a.confirm(fmt.Sprintf("Delete task %s?", id)) {
		a.println("Cancelled")
		return nil
	}

	if _, err := a.store.Dispatch(ctx, store.DeleteTask(id)).Wait(); err != nil {
		a.println(renderError(api.Message(err, "Failed to delete task")))
		return err
	}
	a.println(renderOK("Task deleted"))
	return nil
}

func (a *App) taskForm() (models.TaskDraft, error) {
	var d models.TaskDraft

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return d, err
	}
	description, err := GetMultiline(a.reader, "Description (optional)", a.out)
	if err != nil {
		return d, err
	}
	assignee, err := GetSimpleText(a.reader, "Assign to employee id (optional)", a.out)
	if err != nil {
		return d, err
	}
	priority, err := GetWithDefault(a.reader, "Priority (Low/Medium/High)", string(models.PriorityMedium), a.out)
	if err != nil {
		return d, err
	}
	deadline, err := GetSimpleText(a.reader, "Deadline YYYY-MM-DD (optional)", a.out)
	if err != nil {
		return d, err
	}

	d = models.TaskDraft{Title: title, Description: description, AssignedTo: assignee}
	if d.Priority, err = models.ParsePriority(priority); err != nil {
		return d, err
	}
	if deadline != "" {
		t, err := time.Parse(time.DateOnly, deadline)
		if err != nil {
			return d, fmt.Errorf("invalid deadline %q: want YYYY-MM-DD", deadline)
		}
		d.Deadline = &t
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}
