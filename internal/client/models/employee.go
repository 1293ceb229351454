package models

import (
	"fmt"
	"strings"
)

// EmployeeStatus is the employment state shown on the roster.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
)

func (s EmployeeStatus) Valid() bool {
	return s == EmployeeActive || s == EmployeeInactive
}

// ParseEmployeeStatus accepts the status name in any case.
func ParseEmployeeStatus(s string) (EmployeeStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return EmployeeActive, nil
	case "inactive":
		return EmployeeInactive, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Employee is a roster record as returned by the service. ID is assigned by
// the server and never invented client-side; Phone is optional.
type Employee struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Department string         `json:"department"`
	Phone      string         `json:"phone,omitempty"`
	Status     EmployeeStatus `json:"status"`
}

// Key returns the identity used for reconciliation.
func (e Employee) Key() string { return e.ID }

// Draft returns the editable fields of e.
func (e Employee) Draft() EmployeeDraft {
	return EmployeeDraft{
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Phone:      e.Phone,
		Status:     e.Status,
	}
}

func (e Employee) Validate() error {
	if e.ID == "" {
		return ErrMissingID
	}
	return e.Draft().Validate()
}

// EmployeeDraft is the body of create and of full-record update.
type EmployeeDraft struct {
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Department string         `json:"department"`
	Phone      string         `json:"phone,omitempty"`
	Status     EmployeeStatus `json:"status"`
}

func (d EmployeeDraft) Validate() error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return ErrMissingName
	case strings.TrimSpace(d.Email) == "":
		return ErrMissingEmail
	case strings.TrimSpace(d.Department) == "":
		return ErrMissingDept
	case !d.Status.Valid():
		return fmt.Errorf("%w: %q", ErrInvalidStatus, d.Status)
	}
	return nil
}
