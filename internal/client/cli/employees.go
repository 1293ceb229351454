package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staffdesk/internal/client/api"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/store"
)

// ListEmployees fetches the roster, optionally filtered by query, and prints
// it. Fetch failures are reported by the store listener.
func (a *App) ListEmployees(ctx context.Context, query string) error {
	if _, err := a.store.Dispatch(ctx, store.FetchEmployees(query)).Wait(); err != nil {
		return err
	}
	a.println(renderEmployees(a.store.Snapshot().Employees.Items))
	return nil
}

// AddEmployee collects a new employee and creates it.
func (a *App) AddEmployee(ctx context.Context) error {
	draft, err := a.employeeForm(models.EmployeeDraft{Status: models.EmployeeActive})
	if err != nil {
		a.println(renderError(err.Error()))
		return err
	}

	created, err := store.Await[models.Employee](a.store.Dispatch(ctx, store.CreateEmployee(draft)))
	if err != nil {
		a.println(renderError(api.Message(err, "Failed to create employee")))
		return err
	}
	a.println(renderOK(fmt.Sprintf("Employee %s created (id %s)", created.Name, created.ID)))
	return nil
}

// EditEmployee replaces every field of employee id. The current values are
// offered as defaults.
func (a *App) EditEmployee(ctx context.Context, id string) error {
	current, err := a.findEmployee(ctx, id)
	if err != nil {
		a.println(renderError(err.Error()))
		return err
	}

	draft, err := a.employeeForm(current.Draft())
	if err != nil {
		a.println(renderError(err.Error()))
		return err
	}

	updated, err := store.Await[models.Employee](a.store.Dispatch(ctx, store.UpdateEmployee(id, draft)))
	if err != nil {
		a.println(renderError(api.Message(err, "Failed to update employee")))
		return err
	}
	a.println(renderOK(fmt.Sprintf("Employee %s updated", updated.Name)))
	return nil
}

// RemoveEmployee deletes employee id after confirmation.
func (a *App) RemoveEmployee(ctx context.Context, id string) error {
	if !a.confirm(fmt.Sprintf("Delete employee %s?", id)) {
		a.println("Cancelled")
		return nil
	}

	if _, err := a.store.Dispatch(ctx, store.DeleteEmployee(id)).Wait(); err != nil {
		a.println(renderError(api.Message(err, "Failed to delete employee")))
		return err
	}
	a.println(renderOK("Employee deleted"))
	return nil
}

// findEmployee looks id up in the current list, fetching once if absent.
func (a *App) findEmployee(ctx context.Context, id string) (models.Employee, error) {
	if e, ok := a.store.Snapshot().Employees.Find(id); ok {
		return e, nil
	}
	if _, err := a.store.Dispatch(ctx, store.FetchEmployees("")).Wait(); err != nil {
		return models.Employee{}, err
	}
	if e, ok := a.store.Snapshot().Employees.Find(id); ok {
		return e, nil
	}
	return models.Employee{}, fmt.Errorf("employee %s not found", id)
}

// clearField empties an optional field in an edit form.
const clearField = "-"

func (a *App) employeeForm(d models.EmployeeDraft) (models.EmployeeDraft, error) {
	var err error
	ask := func(prompt string, dst *string) {
		if err != nil {
			return
		}
		*dst, err = GetWithDefault(a.reader, prompt, *dst, a.out)
	}

	status := string(d.Status)
	ask("Name", &d.Name)
	ask("Email", &d.Email)
	ask("Department", &d.Department)
	ask("Phone (optional, - to clear)", &d.Phone)
	ask("Status (Active/Inactive)", &status)
	if err != nil {
		return d, err
	}
	if d.Phone == clearField {
		d.Phone = ""
	}

	if d.Status, err = models.ParseEmployeeStatus(status); err != nil {
		return d, err
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

func (a *App) confirm(prompt string) bool {
	answer, err := GetSimpleText(a.reader, prompt+" (y/N)", a.out)
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
