package store

import "github.com/dmitrijs2005/staffdesk/internal/client/models"

type SessionStatus string

const (
	SessionIdle    SessionStatus = "idle"
	SessionPending SessionStatus = "pending"
	SessionError   SessionStatus = "error"
)

type CollectionStatus string

const (
	CollectionIdle    CollectionStatus = "idle"
	CollectionLoading CollectionStatus = "loading"
	CollectionError   CollectionStatus = "error"
)

// SessionState is the auth slice of the tree. Credential is "" when absent.
type SessionState struct {
	Credential string            `json:"credential,omitempty"`
	Principal  *models.Principal `json:"principal,omitempty"`
	Status     SessionStatus     `json:"status"`
	LastError  string            `json:"lastError,omitempty"`
}

// Authenticated reports whether a credential is held.
func (s SessionState) Authenticated() bool {
	return s.Credential != ""
}

// Entity is a server-identified record. Key returns its id.
type Entity interface {
	Key() string
}

// CollectionState is the slice of the tree owned by one Collection.
// LastError only ever records fetch failures.
type CollectionState[T Entity] struct {
	Items     []T              `json:"items"`
	Status    CollectionStatus `json:"status"`
	LastError string           `json:"lastError,omitempty"`
}

// Find returns the item whose key is id.
func (c CollectionState[T]) Find(id string) (T, bool) {
	for _, it := range c.Items {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Snapshot is the whole read model at one point in commit order.
type Snapshot struct {
	Auth      SessionState                     `json:"auth"`
	Employees CollectionState[models.Employee] `json:"employees"`
	Tasks     CollectionState[models.Task]     `json:"tasks"`
}

func initialSnapshot() Snapshot {
	return Snapshot{
		Auth:      SessionState{Status: SessionIdle},
		Employees: CollectionState[models.Employee]{Items: []models.Employee{}, Status: CollectionIdle},
		Tasks:     CollectionState[models.Task]{Items: []models.Task{}, Status: CollectionIdle},
	}
}
