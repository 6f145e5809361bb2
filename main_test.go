package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/inkpaste/inkpaste/storage"
)

func TestSetupRouterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter(storage.NewMemoryStore())

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/", http.StatusOK},
		{"POST", "/", http.StatusOK},
		{"GET", "/about", http.StatusOK},
		{"GET", "/create", http.StatusOK},
		{"GET", "/health", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/ab12", http.StatusNotFound},
		{"GET", "/no/such/route", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestHealthReportsStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter(storage.NewMemoryStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}
