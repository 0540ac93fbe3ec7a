package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"workbench/backend/internal/api/handler"
	"workbench/backend/internal/chathub"
	"workbench/backend/internal/config"
)

func newTestRouter(store *MockStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)

	hub := chathub.NewHub()
	go hub.Run()
	chat := chathub.NewChatService(store, hub)

	h := handler.NewHandler(store, hub, chat, nil, config.Config{JWTSecret: "test-secret"})
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
