package tools

// Status reports whether a tool invocation succeeded.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ErrorCode classifies recoverable tool failures.
type ErrorCode string

const (
	// ErrCodeValidation covers missing required arguments and enum
	// values outside their declared set.
	ErrCodeValidation ErrorCode = "ValidationError"
	// ErrCodeNotFound covers references to ids absent from a store.
	ErrCodeNotFound ErrorCode = "NotFound"
	// ErrCodeUnknownTool covers dispatch to a name no tool carries.
	ErrCodeUnknownTool ErrorCode = "UnknownTool"
	// ErrCodeExecution covers computation failures inside a handler,
	// such as a malformed arithmetic expression.
	ErrCodeExecution ErrorCode = "ExecutionError"
)

// Error is a structured, recoverable tool failure.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
}

// Result is the uniform envelope every tool invocation produces.
// Business failures ride in Error; a Go error never crosses the
// registry boundary.
type Result struct {
	Status Status `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

func errorResult(code ErrorCode, message string) Result {
	return Result{
		Status: StatusError,
		Error:  &Error{Code: code, Message: message},
	}
}
