package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/gglink/gglink/internal/auth"
	"github.com/gglink/gglink/internal/config"
	"github.com/gglink/gglink/internal/delivery/ws"
	"github.com/gglink/gglink/internal/middleware"
	"github.com/gglink/gglink/internal/storage"
	"github.com/gglink/gglink/internal/usecase"
)

// newTestRouter wires a full router against a fresh in-memory database.
// Rate limits are generous so tests never trip them.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := storage.SeedCommunities(db); err != nil {
		t.Fatalf("failed to seed communities: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.JWTSecret = "test-secret"

	users := storage.NewUserRepository(db)
	lobbies := storage.NewLobbyRepository(db)
	communities := storage.NewCommunityRepository(db)
	feedback := storage.NewFeedbackRepository(db)

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := usecase.NewAuthService(users, auth.NewPasswordHasher(), tokens)
	lobbySvc := usecase.NewLobbyService(lobbies, users)
	communitySvc := usecase.NewCommunityService(communities, users)
	feedbackSvc := usecase.NewFeedbackService(feedback, lobbies, users)

	presence := ws.NewPresence(ws.NewRegistry())
	h := NewHandler(cfg, authSvc, lobbySvc, communitySvc, feedbackSvc, presence)

	return NewRouter(h,
		middleware.NewIPRateLimiter(1000, 1000),
		middleware.NewIPRateLimiter(1000, 1000),
	)
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *mux.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a response body into a map for assertions.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, router *mux.Router, username string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	token, ok := decodeBody(t, w)["token"].(string)
	if !ok || token == "" {
		t.Fatal("register response missing token")
	}
	return token
}

// createLobby creates a lobby through the API and returns its id.
func createLobby(t *testing.T, router *mux.Router, token string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/lobbies", token, map[string]any{
		"name":        "Ranked grind",
		"game":        "Valorant",
		"mode":        "Competitive",
		"max_players": 5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create lobby returned %d: %s", w.Code, w.Body.String())
	}

	id, ok := decodeBody(t, w)["id"].(string)
	if !ok || id == "" {
		t.Fatal("create lobby response missing id")
	}
	return id
}
