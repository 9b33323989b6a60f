// model/requests.go
package model

// RegisterRequest is the POST /auth/register body. Username and password
// presence is checked by the controller so the error message matches the
// documented contract; the rest is validated here.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the PUT /user/:id body. Empty fields are left
// untouched.
type UpdateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// NoteRequest is the body for note create and update.
type NoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags" validate:"omitempty,dive,required"`
}
