package models

// AuthResponse is the body of the login and register endpoints.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
}

// Session is the signed-in user persisted under the "user" key.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Credentials is the request body of login and register.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}
