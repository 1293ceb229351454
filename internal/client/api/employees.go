package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
)

// EmployeesAPI covers the /employees resource.
type EmployeesAPI struct {
	c *Client
}

func (c *Client) Employees() *EmployeesAPI {
	return &EmployeesAPI{c: c}
}

// List returns employees matching query in server order. The q parameter is
// always sent, empty or not.
func (e *EmployeesAPI) List(ctx context.Context, query string) ([]models.Employee, error) {
	var resp []employeeWire
	if err := e.c.Do(ctx, http.MethodGet, "/employees?q="+url.QueryEscape(query), nil, &resp); err != nil {
		return nil, err
	}
	out := make([]models.Employee, 0, len(resp))
	for _, w := range resp {
		emp, err := w.model()
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, nil
}

func (e *EmployeesAPI) Create(ctx context.Context, draft models.EmployeeDraft) (models.Employee, error) {
	return e.send(ctx, http.MethodPost, "/employees", draft)
}

// Update replaces every editable field of the employee.
func (e *EmployeesAPI) Update(ctx context.Context, id string, draft models.EmployeeDraft) (models.Employee, error) {
	return e.send(ctx, http.MethodPut, "/employees/"+url.PathEscape(id), draft)
}

func (e *EmployeesAPI) Delete(ctx context.Context, id string) error {
	return e.c.Do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id), nil, nil)
}

func (e *EmployeesAPI) send(ctx context.Context, method, path string, draft models.EmployeeDraft) (models.Employee, error) {
	var resp employeeWire
	if err := e.c.Do(ctx, method, path, draft, &resp); err != nil {
		return models.Employee{}, err
	}
	return resp.model()
}
