package utils

// Error codes returned in the "code" field of error responses.
const (
	ErrorTokenAuthFail = "TOKEN_AUTH_FAIL"
	ErrorNotFound      = "NOT_FOUND"
	ErrorConflict      = "CONFLICT"
	ErrorValidation    = "VALIDATION"
	ErrorQueryFailure  = "QUERY_FAILURE"
	ErrorUnexpected    = "UNEXPECTED"
)
