package models

import "errors"

var (
	ErrMissingID        = errors.New("models: missing id")
	ErrMissingName      = errors.New("models: missing name")
	ErrMissingEmail     = errors.New("models: missing email")
	ErrMissingDept      = errors.New("models: missing department")
	ErrMissingTitle     = errors.New("models: missing title")
	ErrInvalidStatus    = errors.New("models: invalid status")
	ErrInvalidPriority  = errors.New("models: invalid priority")
	ErrMissingToken     = errors.New("models: missing token")
	ErrInvalidTaskState = errors.New("models: invalid task status")
)
