package tool

import "errors"

var (
	// ErrToolNotFound signals a lookup for an unknown tool id.
	ErrToolNotFound = errors.New("tool not found")
	// ErrToolNotActive signals execution of a tool whose status is not active.
	ErrToolNotActive = errors.New("tool is not active")
	// ErrRateLimited signals that a user exhausted a tool's hourly quota.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrProjectNotFound signals a registration referencing a showcase
	// project that does not exist or is not owned by the caller.
	ErrProjectNotFound = errors.New("project not found or you don't have permission")
)
