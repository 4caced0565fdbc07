package dto

// MessageRes is a plain success message.
type MessageRes struct {
	Message string `json:"message"`
}

// ErrorRes is the body of every non-2xx response.
type ErrorRes struct {
	Error string `json:"error"`
}

// LoginRes is returned by a successful /login.
type LoginRes struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// ProfileRes is returned by /profile.
type ProfileRes struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}
