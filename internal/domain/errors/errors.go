package errors

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidRole         = errors.New("invalid role")
	ErrRoleChangeForbidden = errors.New("role change not allowed")
	ErrInvalidAssignee     = errors.New("invalid delivery assignee")
	ErrInvalidInput        = errors.New("invalid input")
)
