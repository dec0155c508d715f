package models

// Violation describes a single field-level validation failure.
// The JSON key names mirror the wire format consumed by existing API clients.
type Violation struct {
	// Field is the name of the struct field that failed validation.
	Field string `json:"Field"`

	// Message is the human-readable description of the failure.
	Message string `json:"Error"`
}

// ViolationsResponse is the body of a 400 response on the update path.
// Each entry carries both the failing field and its message.
type ViolationsResponse struct {
	Errors []Violation `json:"Errors"`
}

// MessagesResponse is the body of a 400 response on the create path.
// Only the violation messages are reported.
type MessagesResponse struct {
	Errors []string `json:"Errors"`
}
