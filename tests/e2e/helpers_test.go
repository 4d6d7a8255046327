//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/neologe-backend/internal/adapter/llm/arbiter"
	"github.com/heartmarshall/neologe-backend/internal/adapter/llm/gemini"
	"github.com/heartmarshall/neologe-backend/internal/adapter/llm/openai"
	"github.com/heartmarshall/neologe-backend/internal/adapter/postgres"
	evaluationrepo "github.com/heartmarshall/neologe-backend/internal/adapter/postgres/evaluation"
	responserepo "github.com/heartmarshall/neologe-backend/internal/adapter/postgres/response"
	submissionrepo "github.com/heartmarshall/neologe-backend/internal/adapter/postgres/submission"
	"github.com/heartmarshall/neologe-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/neologe-backend/internal/adapter/postgres/user"
	jwtauth "github.com/heartmarshall/neologe-backend/internal/auth"
	"github.com/heartmarshall/neologe-backend/internal/config"
	"github.com/heartmarshall/neologe-backend/internal/llm"
	authsvc "github.com/heartmarshall/neologe-backend/internal/service/auth"
	"github.com/heartmarshall/neologe-backend/internal/service/neologism"
	"github.com/heartmarshall/neologe-backend/internal/transport/middleware"
	"github.com/heartmarshall/neologe-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// Stub LLM servers. Each emulates just enough of the real provider's wire
// format for the adapters to parse.
// ---------------------------------------------------------------------------

// definitionJSON renders a standardized definition the way a provider would.
func definitionJSON(word, definition, partOfSpeech string, confidence float64) string {
	return fmt.Sprintf(`{"word": %q, "definition": %q, "part_of_speech": %q, "confidence": %g}`,
		word, definition, partOfSpeech, confidence)
}

// openaiStubOK answers every chat completion with the given content text.
func openaiStubOK(content string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		})
	})
}

// geminiStubOK answers every generateContent call with the given text.
func geminiStubOK(text string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		})
	})
}

// arbiterStub answers every Anthropic messages call with the given verdict.
func arbiterStub(conflict bool, explanation string) http.Handler {
	verdict := fmt.Sprintf(`{"conflict": %t, "explanation": %q}`, conflict, explanation)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"model":       "claude-test",
			"content":     []map[string]any{{"type": "text", "text": verdict}},
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 1, "output_tokens": 1},
		})
	})
}

// failStub answers every call with the given HTTP status.
func failStub(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "stub failure", status)
	})
}

// llmStubs configures the fake provider backends for one test server.
type llmStubs struct {
	openai  http.Handler
	gemini  http.Handler
	arbiter http.Handler
}

// agreeingStubs makes both providers return near-identical definitions and
// the arbiter report no conflict.
func agreeingStubs(word string) llmStubs {
	return llmStubs{
		openai:  openaiStubOK(definitionJSON(word, "a compact everyday tool", "noun", 0.9)),
		gemini:  geminiStubOK(definitionJSON(word, "a small everyday tool", "noun", 0.85)),
		arbiter: arbiterStub(false, "definitions agree"),
	}
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and stubbed LLM backends.
func setupTestServer(t *testing.T, stubs llmStubs) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	submissions := submissionrepo.New(pool)
	responses := responserepo.New(pool)
	evaluations := evaluationrepo.New(pool)
	users := userrepo.New(pool)

	openaiSrv := httptest.NewServer(stubs.openai)
	t.Cleanup(openaiSrv.Close)
	geminiSrv := httptest.NewServer(stubs.gemini)
	t.Cleanup(geminiSrv.Close)
	arbiterSrv := httptest.NewServer(stubs.arbiter)
	t.Cleanup(arbiterSrv.Close)

	evaluators := []llm.Evaluator{
		openai.New("test-key", "", openaiSrv.URL, logger),
		gemini.New("test-key", "", geminiSrv.URL, logger),
	}
	judge := arbiter.New("test-key", "", arbiterSrv.URL, logger)

	llmCfg := config.LLMConfig{
		CallTimeout:       5 * time.Second,
		EvaluationTimeout: 15 * time.Second,
	}

	jwtMgr := jwtauth.NewJWTManager("test-secret-at-least-32-chars-long!!", "neologe-test", 15*time.Minute)

	authService := authsvc.NewService(logger, users, jwtMgr)
	neologismService := neologism.NewService(logger, submissions, responses, evaluations, txm, evaluators, judge, llmCfg)
	t.Cleanup(neologismService.Wait)

	router := rest.NewRouter(rest.RouterDeps{
		Health:    rest.NewHealthHandler(pool, "test-version"),
		Auth:      rest.NewAuthHandler(authService, logger),
		Neologism: rest.NewNeologismHandler(neologismService, logger),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// doJSON sends a JSON request and returns status + decoded body.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Middleware rejections are plain text, handler responses are JSON.
	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		decoded = nil
	}
	return resp.StatusCode, decoded
}

var userCounter int

// registerUser creates a fresh account and returns its access token.
func registerUser(t *testing.T, ts *testServer) string {
	t.Helper()

	userCounter++
	suffix := fmt.Sprintf("%d-%d", time.Now().UnixNano(), userCounter)
	status, body := ts.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "wordsmith-" + suffix,
		"email":    fmt.Sprintf("wordsmith-%s@example.com", suffix),
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "register response: %v", body)
	return token
}

// submitWord creates a submission and returns its id.
func submitWord(t *testing.T, ts *testServer, token, word string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/neologisms", token, map[string]string{
		"word":           word,
		"userDefinition": "something I made up for " + word,
	})
	require.Equal(t, http.StatusAccepted, status, "submit: %v", body)
	require.Equal(t, "pending", body["status"])

	id, ok := body["id"].(string)
	require.True(t, ok, "submit response: %v", body)
	return id
}

// waitForStatus polls the submission until it leaves pending or the
// deadline passes, then asserts the final status.
func waitForStatus(t *testing.T, ts *testServer, token, id, want string) map[string]any {
	t.Helper()

	var last map[string]any
	require.Eventually(t, func() bool {
		status, body := ts.doJSON(t, http.MethodGet, "/api/neologisms/"+id, token, nil)
		if status != http.StatusOK {
			return false
		}
		last = body
		sub, ok := body["submission"].(map[string]any)
		return ok && sub["status"] != "pending"
	}, 20*time.Second, 100*time.Millisecond, "submission never left pending")

	sub := last["submission"].(map[string]any)
	require.Equal(t, want, sub["status"], "detail: %v", last)
	return last
}
