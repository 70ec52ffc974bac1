package response

// FieldError is one field-level validation violation. All violations in a
// request are collected and reported together.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the 400 body for field validation failures.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// InternalError is the 500 body; it never carries internal detail.
type InternalError struct {
	Error string `json:"error"`
}

// Deleted acknowledges a successful delete.
type Deleted struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
