// Package api is the gateway between the staffdesk stores and the remote
// REST service.
//
// # Overview
//
// Client performs single-attempt JSON calls, attaching the current session
// credential (see TokenSource) as a bearer Authorization header. Typed
// endpoint groups sit on top of Client.Do:
//
//   - Auth:       POST /auth/login
//   - Employees:  GET/POST /employees, PUT/DELETE /employees/{id}
//   - Tasks:      GET/POST /tasks, PATCH /tasks/{id}/status, DELETE /tasks/{id}
//   - Dashboard:  GET /dashboard
//
// # Error Handling
//
// Every failure, whether transport, HTTP status or a response that fails
// schema validation, is returned as *Error carrying a human-readable Message.
// The server's {"message": ...} body wins when present. Callers that need to
// branch can match sentinels with errors.Is: ErrUnauthorized, ErrUnavailable,
// ErrNotFound, ErrValidation.
//
// There are no retries; the adapter holds no per-request state and is safe
// for concurrent use.
package api
