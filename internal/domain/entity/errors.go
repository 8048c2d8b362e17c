package entity

import "errors"

var (
	// ErrCapacityExceeded is returned when adding a tab at the ceiling.
	ErrCapacityExceeded = errors.New("tab capacity exceeded")
	// ErrTabNotFound is returned when an operation references a stale tab id.
	ErrTabNotFound = errors.New("tab not found")
	// ErrNoActiveTab should be unreachable once the tab list is initialised.
	ErrNoActiveTab = errors.New("no active tab")
	// ErrScriptEvaluationFailed wraps failures from page script queries.
	ErrScriptEvaluationFailed = errors.New("script evaluation failed")
	// ErrViewOperationFailed is returned when a navigation primitive has no view.
	ErrViewOperationFailed = errors.New("view operation failed")
	// ErrInvalidTheme is returned for theme values other than light or dark.
	ErrInvalidTheme = errors.New("invalid theme")
)
