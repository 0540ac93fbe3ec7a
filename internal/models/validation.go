package models

import (
	"fmt"

	"github.com/samber/lo"
)

// EntityStatuses is the allowed status set for projects, campaigns and
// products.
var EntityStatuses = []string{"planning", "active", "completed", "on_hold"}

// ValidationError reports a single failed model-level constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func validStatus(status string) bool {
	return lo.Contains(EntityStatuses, status)
}
