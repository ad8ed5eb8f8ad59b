package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightline/backend/internal/api/handlers"
)

func setupQuoteRouter(svc *MockQuoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewRestQuoteHandler(svc)
	r := gin.New()
	r.POST("/api/quote", handler.SubmitQuote)
	return r
}

func postJSON(r *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func validQuoteBody() map[string]interface{} {
	return map[string]interface{}{
		"name":              "Alice Smith",
		"email":             "alice@example.com",
		"cargo_type":        "pallets",
		"weight_kg":         480.5,
		"pickup_location":   "Chicago, IL",
		"delivery_location": "Denver, CO",
	}
}

func TestRestQuoteHandler_SubmitQuote_Success(t *testing.T) {
	mockSvc := new(MockQuoteService)
	mockSvc.On("SubmitQuote", mock.Anything, mock.Anything).Return("66f2a1b4c3d2e1f001234567", nil)
	r := setupQuoteRouter(mockSvc)

	w := postJSON(r, "/api/quote", validQuoteBody())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "66f2a1b4c3d2e1f001234567", resp["id"])
	mockSvc.AssertExpectations(t)
}

func TestRestQuoteHandler_SubmitQuote_MissingRequiredFields(t *testing.T) {
	mockSvc := new(MockQuoteService)
	r := setupQuoteRouter(mockSvc)

	body := validQuoteBody()
	delete(body, "name")
	delete(body, "pickup_location")

	w := postJSON(r, "/api/quote", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Detail []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Detail, 2)
	assert.Equal(t, "name", resp.Detail[0].Field)
	assert.Equal(t, "pickup_location", resp.Detail[1].Field)

	// No persistence call is made on validation failure.
	mockSvc.AssertNotCalled(t, "SubmitQuote", mock.Anything, mock.Anything)
}

func TestRestQuoteHandler_SubmitQuote_InvalidEmail(t *testing.T) {
	mockSvc := new(MockQuoteService)
	r := setupQuoteRouter(mockSvc)

	body := validQuoteBody()
	body["email"] = "not-an-email"

	w := postJSON(r, "/api/quote", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "email")
	mockSvc.AssertNotCalled(t, "SubmitQuote", mock.Anything, mock.Anything)
}

func TestRestQuoteHandler_SubmitQuote_NegativeWeight(t *testing.T) {
	mockSvc := new(MockQuoteService)
	r := setupQuoteRouter(mockSvc)

	body := validQuoteBody()
	body["weight_kg"] = -5.0

	w := postJSON(r, "/api/quote", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "weight_kg")
	mockSvc.AssertNotCalled(t, "SubmitQuote", mock.Anything, mock.Anything)
}

func TestRestQuoteHandler_SubmitQuote_MalformedJSON(t *testing.T) {
	mockSvc := new(MockQuoteService)
	r := setupQuoteRouter(mockSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/quote", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockSvc.AssertNotCalled(t, "SubmitQuote", mock.Anything, mock.Anything)
}

func TestRestQuoteHandler_SubmitQuote_PersistenceError(t *testing.T) {
	mockSvc := new(MockQuoteService)
	mockSvc.On("SubmitQuote", mock.Anything, mock.Anything).Return("", errors.New("connection reset"))
	r := setupQuoteRouter(mockSvc)

	w := postJSON(r, "/api/quote", validQuoteBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection reset")
}
