package dto

import "time"

// CustomError is the uniform body returned for every failed request.
type CustomError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Path      string    `json:"path"`
}

// NewCustomError stamps an error body with the current instant.
func NewCustomError(status int, message, path string) CustomError {
	return CustomError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     message,
		Path:      path,
	}
}

// FieldErrorMessage names one violated field constraint.
type FieldErrorMessage struct {
	FieldName    string `json:"fieldName"`
	ErrorMessage string `json:"errorMessage"`
}

// ValidationCustomError extends CustomError with the per-field violation
// list, in the order the validator discovered them.
type ValidationCustomError struct {
	CustomError
	ErrorList []FieldErrorMessage `json:"errorList"`
}

// NewValidationCustomError builds the validation failure body.
func NewValidationCustomError(status int, message, path string) ValidationCustomError {
	return ValidationCustomError{
		CustomError: NewCustomError(status, message, path),
		ErrorList:   []FieldErrorMessage{},
	}
}

// AddError appends one field violation to the list.
func (e *ValidationCustomError) AddError(fieldName, errorMessage string) {
	e.ErrorList = append(e.ErrorList, FieldErrorMessage{FieldName: fieldName, ErrorMessage: errorMessage})
}
