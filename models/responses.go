package models

// AuthResponse is returned by sign-up and sign-in.
type AuthResponse struct {
	// Token is the signed bearer token, also sent in the
	// "Authorization" response header.
	Token string `json:"token"`

	// User is the authenticated account without credentials.
	User User `json:"user"`
}

// ErrorResponse is the body of every error response written by the API.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`

	// Details lists individual validation failures, if any.
	Details []string `json:"details,omitempty"`
}
