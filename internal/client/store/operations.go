package store

import (
	"context"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
)

// Operation is an intent routed by Store.Dispatch to the store owning it.
type Operation struct {
	Name string
	run  func(ctx context.Context, s *Store) (any, error)
}

const (
	OpLogin            = "auth/login"
	OpLogout           = "auth/logout"
	OpClearError       = "auth/clearError"
	OpFetchEmployees   = "employees/fetchAll"
	OpCreateEmployee   = "employees/create"
	OpUpdateEmployee   = "employees/update"
	OpDeleteEmployee   = "employees/remove"
	OpFetchTasks       = "tasks/fetchAll"
	OpCreateTask       = "tasks/create"
	OpUpdateTaskStatus = "tasks/updateStatus"
	OpDeleteTask       = "tasks/remove"
)

// Login settles with models.LoginResult.
func Login(email, password string) Operation {
	return Operation{Name: OpLogin, run: func(ctx context.Context, s *Store) (any, error) {
		return s.Auth.Login(ctx, email, password)
	}}
}

func Logout() Operation {
	return Operation{Name: OpLogout, run: func(ctx context.Context, s *Store) (any, error) {
		s.Auth.Logout(ctx)
		return nil, nil
	}}
}

func ClearError() Operation {
	return Operation{Name: OpClearError, run: func(_ context.Context, s *Store) (any, error) {
		s.Auth.ClearError()
		return nil, nil
	}}
}

// FetchEmployees settles with []models.Employee.
func FetchEmployees(query string) Operation {
	return Operation{Name: OpFetchEmployees, run: func(ctx context.Context, s *Store) (any, error) {
		return s.Employees.FetchAll(ctx, query)
	}}
}

// CreateEmployee settles with the created models.Employee.
func CreateEmployee(draft models.EmployeeDraft) Operation {
	return Operation{Name: OpCreateEmployee, run: func(ctx context.Context, s *Store) (any, error) {
		return s.Employees.Create(ctx, draft)
	}}
}

// UpdateEmployee replaces every field of employee id with draft.
func UpdateEmployee(id string, draft models.EmployeeDraft) Operation {
	return Operation{Name: OpUpdateEmployee, run: func(ctx context.Context, s *Store) (any, error) {
		return s.Employees.Update(ctx, id, draft)
	}}
}

// DeleteEmployee settles with the removed id.
func DeleteEmployee(id string) Operation {
	return Operation{Name: OpDeleteEmployee, run: func(ctx context.Context, s *Store) (any, error) {
		if err := s.Employees.Remove(ctx, id); err != nil {
			return nil, err
		}
		return id, nil
	}}
}

// FetchTasks settles with []models.Task.
func FetchTasks(query string) Operation {
	return Operation{Name: OpFetchTasks, run: func(ctx context.Context, s *Store) (any, error) {
		return s.Tasks.FetchAll(ctx, query)
	}}
}

func CreateTask(draft models.TaskDraft) Operation {
	return Operation{Name: OpCreateTask, run: func(ctx context.Context, s *Store) (any, error) {
		return s.Tasks.Create(ctx, draft)
	}}
}

func UpdateTaskStatus(id string, status models.TaskStatus) Operation {
	return Operation{Name: OpUpdateTaskStatus, run: func(ctx context.Context, s *Store) (any, error) {
		return s.Tasks.Update(ctx, id, status)
	}}
}

func DeleteTask(id string) Operation {
	return Operation{Name: OpDeleteTask, run: func(ctx context.Context, s *Store) (any, error) {
		if err := s.Tasks.Remove(ctx, id); err != nil {
			return nil, err
		}
		return id, nil
	}}
}
