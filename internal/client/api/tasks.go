package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
)

// TasksAPI covers the /tasks resource.
type TasksAPI struct {
	c *Client
}

func (c *Client) Tasks() *TasksAPI {
	return &TasksAPI{c: c}
}

// List returns all tasks in server order. The service has no task search; a
// non-empty query is forwarded as q for services that do.
func (t *TasksAPI) List(ctx context.Context, query string) ([]models.Task, error) {
	path := "/tasks"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}
	var resp []taskWire
	if err := t.c.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]models.Task, 0, len(resp))
	for _, w := range resp {
		task, err := w.model()
		if err != nil {
			return nil, err
		}
		out = append(out, task)
	}
	return out, nil
}

func (t *TasksAPI) Create(ctx context.Context, draft models.TaskDraft) (models.Task, error) {
	var resp taskWire
	if err := t.c.Do(ctx, http.MethodPost, "/tasks", newTaskDraftWire(draft), &resp); err != nil {
		return models.Task{}, err
	}
	return resp.model()
}

type statusRequest struct {
	Status models.TaskStatus `json:"status"`
}

// Update changes only the status of a task.
func (t *TasksAPI) Update(ctx context.Context, id string, status models.TaskStatus) (models.Task, error) {
	var resp taskWire
	path := "/tasks/" + url.PathEscape(id) + "/status"
	if err := t.c.Do(ctx, http.MethodPatch, path, statusRequest{Status: status}, &resp); err != nil {
		return models.Task{}, err
	}
	return resp.model()
}

func (t *TasksAPI) Delete(ctx context.Context, id string) error {
	return t.c.Do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}
