package apierrors

import "fmt"

//Kind enumerates every failure class the step can produce. The set is
//closed on purpose: callers switch on it to decide reporting and exit
//behavior, so new kinds require touching those switches.
type Kind int

const (
	//KindAPI is a response from the distribution service with a
	//non-success status code.
	KindAPI Kind = iota + 1
	//KindNetwork is a request that never produced a usable response.
	KindNetwork
	//KindParse is a success response whose body doesn't match the
	//documented shape.
	KindParse
	//KindValidation is a bad step input, caught before any request.
	KindValidation
	//KindProcessingTimeout is a build that stayed unprocessed after the
	//configured polling budget.
	KindProcessingTimeout
)

func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api_failure"
	case KindNetwork:
		return "network_failure"
	case KindParse:
		return "parse_failure"
	case KindValidation:
		return "validation_failure"
	case KindProcessingTimeout:
		return "processing_timeout"
	default:
		return "unknown"
	}
}

//StepError is the error contract every layer of the step returns.
type StepError interface {
	Kind() Kind
	Status() int
	Body() string
	Message() string
	Error() string
	Unwrap() error
}

type stepError struct {
	ErrKind    Kind   `json:"kind"`
	ErrStatus  int    `json:"status,omitempty"`
	ErrBody    string `json:"body,omitempty"`
	ErrMessage string `json:"message"`
	ErrCause   error  `json:"-"`
}

func (e stepError) Kind() Kind {
	return e.ErrKind
}

func (e stepError) Status() int {
	return e.ErrStatus
}

func (e stepError) Body() string {
	return e.ErrBody
}

func (e stepError) Message() string {
	return e.ErrMessage
}

func (e stepError) Error() string {
	if e.ErrStatus > 0 {
		return fmt.Sprintf("[kind: %s] [status: %d] %s", e.ErrKind, e.ErrStatus, e.ErrMessage)
	}
	return fmt.Sprintf("[kind: %s] %s", e.ErrKind, e.ErrMessage)
}

func (e stepError) Unwrap() error {
	return e.ErrCause
}

//NewAPIFailure builds the error for a non-success response, keeping the
//status code and raw body for diagnostics.
func NewAPIFailure(message string, status int, body string) StepError {
	return stepError{
		ErrKind:    KindAPI,
		ErrStatus:  status,
		ErrBody:    body,
		ErrMessage: message,
	}
}

//NewNetworkFailure builds the error for a request that got no response.
func NewNetworkFailure(message string, cause error) StepError {
	return stepError{
		ErrKind:    KindNetwork,
		ErrMessage: message,
		ErrCause:   cause,
	}
}

//NewParseFailure builds the error for a response body the step can't use,
//keeping the raw body for diagnostics.
func NewParseFailure(message string, body string, cause error) StepError {
	return stepError{
		ErrKind:    KindParse,
		ErrBody:    body,
		ErrMessage: message,
		ErrCause:   cause,
	}
}

//NewValidationFailure builds the error for an invalid step input.
func NewValidationFailure(message string) StepError {
	return stepError{
		ErrKind:    KindValidation,
		ErrMessage: message,
	}
}

//NewProcessingTimeout builds the error for a build that never reached the
//processed state within the polling budget.
func NewProcessingTimeout(message string) StepError {
	return stepError{
		ErrKind:    KindProcessingTimeout,
		ErrMessage: message,
	}
}
