package models

// User represents a single entry of the user directory.
// Field values other than ID are supplied by API clients; ID is always
// assigned by the store and never trusted from a request body.
type User struct {
	// ID is the unique identifier of the user within the directory.
	// Assigned by the store on creation, monotonically increasing.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	// Required, at most 50 characters.
	Name string `json:"name" validate:"required,max=50"`

	// Email is the contact e-mail address of the user.
	// Required, must be syntactically valid.
	Email string `json:"email" validate:"required,email"`
}
