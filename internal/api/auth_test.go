package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	router, _ := setupTestAPI(t)

	resp := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password123",
		"height":   168.0,
		"weight":   60.0,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var out struct {
		Token string `json:"token"`
		User  struct {
			Email string   `json:"email"`
			BMI   *float64 `json:"bmi"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "alice@example.com", out.User.Email)
	require.NotNil(t, out.User.BMI)
	assert.InDelta(t, 21.26, *out.User.BMI, 0.01)
}

func TestRegisterValidation(t *testing.T) {
	router, _ := setupTestAPI(t)

	// Password too short.
	resp := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// Bad email.
	resp = doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Bob",
		"email":    "not-an-email",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRegisterDuplicateEmailEndpoint(t *testing.T) {
	router, _ := setupTestAPI(t)

	registerTestUser(t, router, "dup@example.com")

	resp := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Imposter",
		"email":    "dup@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := setupTestAPI(t)

	registerTestUser(t, router, "carol@example.com")

	resp := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "carol@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Token)

	resp = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "carol@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
