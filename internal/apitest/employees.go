package apitest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/google/uuid"
)

type employeeJSON struct {
	ID         string                `json:"_id"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Department string                `json:"department"`
	Phone      string                `json:"phone,omitempty"`
	Status     models.EmployeeStatus `json:"status"`
}

func toEmployeeJSON(e models.Employee) employeeJSON {
	return employeeJSON{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Phone:      e.Phone,
		Status:     e.Status,
	}
}

func matches(e models.Employee, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, field := range []string{e.Name, e.Email, e.Department} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (f *Fake) listEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	f.mu.Lock()
	out := make([]employeeJSON, 0, len(f.employees))
	for _, e := range f.employees {
		if matches(e, q) {
			out = append(out, toEmployeeJSON(e))
		}
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func decodeEmployeeDraft(r *http.Request) (models.EmployeeDraft, bool) {
	var d models.EmployeeDraft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		return d, false
	}
	if d.Status == "" {
		d.Status = models.EmployeeActive
	}
	return d, d.Validate() == nil
}

func (f *Fake) createEmployee(w http.ResponseWriter, r *http.Request) {
	d, ok := decodeEmployeeDraft(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range f.employees {
		if strings.EqualFold(e.Email, d.Email) {
			writeMessage(w, http.StatusBadRequest, "Employee with this email already exists")
			return
		}
	}

	e := models.Employee{
		ID:         uuid.NewString(),
		Name:       d.Name,
		Email:      d.Email,
		Department: d.Department,
		Phone:      d.Phone,
		Status:     d.Status,
	}
	f.employees = append([]models.Employee{e}, f.employees...)
	writeJSON(w, http.StatusCreated, toEmployeeJSON(e))
}

func (f *Fake) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d, ok := decodeEmployeeDraft(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, e := range f.employees {
		if e.ID != id {
			continue
		}
		e = models.Employee{
			ID:         id,
			Name:       d.Name,
			Email:      d.Email,
			Department: d.Department,
			Phone:      d.Phone,
			Status:     d.Status,
		}
		f.employees[i] = e
		writeJSON(w, http.StatusOK, toEmployeeJSON(e))
		return
	}
	writeMessage(w, http.StatusNotFound, "Employee not found")
}

func (f *Fake) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, e := range f.employees {
		if e.ID == id {
			f.employees = append(f.employees[:i:i], f.employees[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "Employee not found")
}
