package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Record errors
	ErrRecordNotFound              = errors.New("record not found")
	ErrIdentityGenerationExhausted = errors.New("repeated record id collisions")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
