package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockShopHandler is a mock implementation of the shop routes.
type MockShopHandler struct{}

func (h *MockShopHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "recommendations"}`))
}

func (h *MockShopHandler) GetShopVibes(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "vibes"}`))
}

func (h *MockShopHandler) PostWhatIf(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "whatif"}`))
}

func (h *MockShopHandler) GetVibeWeights(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "weights"}`))
}

func (h *MockShopHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

// MockPOIHandler is a mock implementation of the POI routes.
type MockPOIHandler struct{}

func (h *MockPOIHandler) GetNearbyPOIs(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "poi nearby"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	mockShopHandler := &MockShopHandler{}
	mockPOIHandler := &MockPOIHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockShopHandler, mockPOIHandler, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Get Recommendations",
			method:     "GET",
			path:       "/v1/shops/recommend",
			statusCode: http.StatusOK,
			response:   `{"message": "recommendations"}`,
		},
		{
			name:       "Get Shop Vibes",
			method:     "GET",
			path:       "/v1/shops/shop123/vibes",
			statusCode: http.StatusOK,
			response:   `{"message": "vibes"}`,
		},
		{
			name:       "Post What If",
			method:     "POST",
			path:       "/v1/shops/shop123/whatif",
			statusCode: http.StatusOK,
			response:   `{"message": "whatif"}`,
		},
		{
			name:       "Get Vibe Weights",
			method:     "GET",
			path:       "/v1/vibes/weights",
			statusCode: http.StatusOK,
			response:   `{"message": "weights"}`,
		},
		{
			name:       "Get Nearby POIs",
			method:     "GET",
			path:       "/v1/poi/nearby",
			statusCode: http.StatusOK,
			response:   `{"message": "poi nearby"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "What If Rejects GET",
			method:     "GET",
			path:       "/v1/shops/shop123/whatif",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
