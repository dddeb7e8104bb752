package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivahq/aiva/models"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusOK)

	require.NoError(t, err)
	assert.Greater(t, n, 0)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels are not JSON-serializable
	_, err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteJSONError_Body(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSONError(rec, "invalid data provided", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid data provided", body.Message)
}

// TestWriteJSON_UserNeverLeaksPassword guards the serialization boundary:
// the password hash must be absent from any JSON rendering of a user.
func TestWriteJSON_UserNeverLeaksPassword(t *testing.T) {
	rec := httptest.NewRecorder()

	user := models.User{Name: "Alice", Email: "alice@example.com", Password: "$2a$10$secret-hash"}
	_, err := WriteJSON(rec, models.ProfileResponse{User: user}, http.StatusOK)

	require.NoError(t, err)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.NotContains(t, rec.Body.String(), "password")
}
