// Package dto defines data transfer objects for the login form's JSON endpoint.
package dto

// LoginFormReq is the request body for POST /api/login.
// Fields are not bound with validation tags: the form controller owns validation.
type LoginFormReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FormStateRes is the form state after one submission attempt.
// The password is never echoed back.
type FormStateRes struct {
	Email   string `json:"email"`
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}
