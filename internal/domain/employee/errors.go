package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrEmployeeInactive   = errors.New("employee is inactive")
)
