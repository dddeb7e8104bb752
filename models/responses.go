package models

// AuthResponse is the body returned by the signup and login endpoints:
// the issued session token together with the (password-stripped) user record.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileResponse is the body returned by the profile endpoint.
type ProfileResponse struct {
	User User `json:"user"`
}

// AvatarsResponse is the body returned by the avatar listing endpoint.
type AvatarsResponse struct {
	Avatars []Avatar `json:"avatars"`
}

// AvatarResponse is the body returned when a single avatar is created.
type AvatarResponse struct {
	Avatar Avatar `json:"avatar"`
}

// ErrorResponse is the uniform error body of the REST API. Message is a
// human-readable description suitable for direct display in the client UI.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
