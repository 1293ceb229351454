package models

// Principal is the identity the service may return alongside a credential.
// Any field may be empty.
type Principal struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// LoginResult is the settled value of a successful login.
type LoginResult struct {
	Token string
	// User is nil when the service omits it.
	User *Principal
}

// DashboardStats are the aggregate counters shown on the dashboard.
type DashboardStats struct {
	TotalEmployees int    `json:"totalEmployees"`
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	PendingTasks   int    `json:"pendingTasks"`
	Message        string `json:"message,omitempty"`
}
