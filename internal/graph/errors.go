package graph

import (
	"fmt"
	"strings"
)

// UnknownDependencyError reports a dependency reference to a task id that is
// not present in the supplied task set.
type UnknownDependencyError struct {
	TaskID string // task declaring the dependency
	Ref    string // missing id it referenced
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("task %s depends on unknown task %s", e.TaskID, e.Ref)
}

// DuplicateTaskError reports two tasks sharing the same id.
type DuplicateTaskError struct {
	TaskID string
}

func (e *DuplicateTaskError) Error() string {
	return fmt.Sprintf("duplicate task id %s", e.TaskID)
}

// InvalidDurationError reports a task with a negative duration.
type InvalidDurationError struct {
	TaskID   string
	Duration float64
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("task %s has invalid duration %g (must be >= 0 working days)", e.TaskID, e.Duration)
}

// CyclicDependencyError reports that the dependency graph is not a DAG.
// Cycle holds one offending cycle in forward order, first task repeated last.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}
