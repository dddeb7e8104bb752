// Package app contains shared application-layer constants used across the
// aiva server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgSignUpFieldsRequired is returned when a registration request is
	// missing the name, the email, or the password.
	MsgSignUpFieldsRequired = "Name, email and password are required"

	// MsgEmailAlreadyRegistered is returned when the requested email is
	// already taken by another account.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not match any existing account. The same message
	// covers unknown emails and wrong passwords.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserNotFound is returned when the account behind a valid token no
	// longer exists.
	MsgUserNotFound = "User not found"

	// MsgUnknownCategory is returned when a listing request names a
	// category outside the marketplace catalogue.
	MsgUnknownCategory = "Unknown category"

	// MsgAvatarFieldsRequired is returned when a publish request is missing
	// the avatar name or the creator attribution.
	MsgAvatarFieldsRequired = "Name and creator are required"
)
