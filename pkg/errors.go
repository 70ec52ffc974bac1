package pkg

// AppError is the error shape exchanged between use cases and HTTP handlers.
//
// Code is a stable machine-readable identifier; Message is safe to return to
// callers. Err keeps the underlying cause for server-side logging only.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body for business-rule and not-found failures.
type HTTPError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToHTTPError renders the caller-facing body; the wrapped cause is never leaked.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Success: false, Message: e.Message}
}
