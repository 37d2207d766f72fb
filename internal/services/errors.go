package services

import "errors"

// Domain error kinds. Every failure a service can produce is one of these;
// raw store errors never cross this package's boundary.
var (
	// ErrResourceNotFound reports that the target of a lookup, update or
	// delete does not exist.
	ErrResourceNotFound = errors.New("Resource Not Found")
	// ErrDatabaseIntegrity reports a delete blocked by a record that still
	// references the target.
	ErrDatabaseIntegrity = errors.New("Database Integrity Constraint Violation")
)

// FieldError names one violated field constraint.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports one or more field constraint violations on a write,
// collected in the order the validator discovered them.
type ValidationError struct {
	Fields []FieldError
}

// Error returns the fixed header message for validation failures.
func (e *ValidationError) Error() string {
	return "Invalid Field Data"
}
