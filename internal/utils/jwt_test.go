package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "aiva-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, userID, token.UserID)
	// compact JWS has three dot-separated segments
	assert.Len(t, strings.Split(token.SignedString, "."), 3)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		issuer   string
		userID   uuid.UUID
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", userID, time.Hour, testSignKey},
		{"nil user id", testIssuer, uuid.Nil, time.Hour, testSignKey},
		{"zero duration", testIssuer, userID, 0, testSignKey},
		{"empty sign key", testIssuer, userID, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

// TestValidateAndParseJWTToken_RoundTrip verifies that verifying a token
// issued for a user yields the same subject identity.
func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	userID := uuid.New()

	issued, err := GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
}

// TestValidateAndParseJWTToken_Expired verifies that a token whose expiry has
// passed fails with the expiry error kind, not a generic signature failure.
func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	userID := uuid.New()

	issued, err := GenerateJWTToken(testIssuer, userID, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

// TestValidateAndParseJWTToken_TamperedSignature verifies that a token whose
// signature has been modified fails with a signature error, never the expiry
// kind.
func TestValidateAndParseJWTToken_TamperedSignature(t *testing.T) {
	userID := uuid.New()

	issued, err := GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)
	require.NoError(t, err)

	// flip the last character of the signature segment
	tampered := issued.SignedString[:len(issued.SignedString)-1]
	if strings.HasSuffix(issued.SignedString, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = ValidateAndParseJWTToken(tampered, testSignKey, testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, uuid.New(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, uuid.New(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, "someone-else")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	require.Error(t, err)
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}
