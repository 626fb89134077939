package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Spreadsheet import pipeline
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeEmptyInput        = "EMPTY_INPUT"
	CodeReadError         = "READ_ERROR"
	CodeMissingColumns    = "MISSING_COLUMNS"
	CodeIncompleteRow     = "INCOMPLETE_ROW"
	CodeInvalidFormat     = "INVALID_FORMAT"
	CodeDanglingReference = "DANGLING_REFERENCE"
	CodePersistenceError  = "PERSISTENCE_ERROR"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
