// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which the authentication middleware stores
// the verified subject identity (the user ID extracted from a valid session
// token). Used together with GetSubjectFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, userID)
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext retrieves the verified subject identity from the
// context.
//
// Returns the user ID and an ok flag:
//   - ok == true: value is found and has the correct uuid.UUID type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetSubjectFromContext(ctx)
//	if !ok {
//	    // handle missing subject in context
//	}
func GetSubjectFromContext(ctx context.Context) (uuid.UUID, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(uuid.UUID)
	return subject, ok
}
