package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodSearchEndpoint(t *testing.T) {
	router, _ := setupTestAPI(t)
	token := registerTestUser(t, router, "foods@example.com")

	resp := doRequest(t, router, http.MethodGet, "/api/v1/nutrition/search?query=chicken", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Count int `json:"count"`
		Foods []struct {
			Name     string  `json:"name"`
			Calories float64 `json:"calories"`
		} `json:"foods"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "chicken breast", out.Foods[0].Name)

	// Empty term is a bad request.
	resp = doRequest(t, router, http.MethodGet, "/api/v1/nutrition/search", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// No match is still a 200 with an empty list.
	resp = doRequest(t, router, http.MethodGet, "/api/v1/nutrition/search?query=zzz", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, 0, out.Count)
}

func TestFoodLookupEndpoint(t *testing.T) {
	router, _ := setupTestAPI(t)
	token := registerTestUser(t, router, "lookup@example.com")

	resp := doRequest(t, router, http.MethodGet, "/api/v1/nutrition/foods/Banana", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Food struct {
			Name        string `json:"name"`
			ServingSize string `json:"serving_size"`
		} `json:"food"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "banana", out.Food.Name)
	assert.Equal(t, "100g", out.Food.ServingSize)

	resp = doRequest(t, router, http.MethodGet, "/api/v1/nutrition/foods/Unobtainium", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCalculationsEndpoint(t *testing.T) {
	router, _ := setupTestAPI(t)
	token := registerTestUser(t, router, "calc@example.com")

	resp := doRequest(t, router, http.MethodGet, "/api/v1/nutrition/calculations", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Calculations struct {
			BMR             int    `json:"bmr"`
			TDEE            int    `json:"tdee"`
			ActivityLevel   string `json:"activity_level"`
			Recommendations struct {
				Maintain int `json:"maintain"`
				Loss     int `json:"weight_loss"`
			} `json:"recommendations"`
		} `json:"calculations"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))

	// 70kg, 175cm, age 25, male, moderate.
	assert.Equal(t, 1674, out.Calculations.BMR)
	assert.Equal(t, 2594, out.Calculations.TDEE)
	assert.Equal(t, "moderate", out.Calculations.ActivityLevel)
	assert.Equal(t, out.Calculations.TDEE, out.Calculations.Recommendations.Maintain)
}

func TestCalculationsIncompleteProfile(t *testing.T) {
	router, _ := setupTestAPI(t)

	// Register without biometrics.
	resp := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Bare",
		"email":    "bare@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &reg))

	resp = doRequest(t, router, http.MethodGet, "/api/v1/nutrition/calculations", reg.Token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
