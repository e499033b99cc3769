package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cs-chatbot-be/internal/bootstrap"
	"cs-chatbot-be/internal/config"
	"cs-chatbot-be/internal/dto"
	"cs-chatbot-be/internal/server"

	"github.com/gofiber/fiber/v2"
)

// newTestApp boots the full HTTP stack against stub collaborator services.
// GROQ_API_KEY is left unset, so generation runs in degraded mode and
// replies come from the FAQ and rule tiers.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	faqSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"faqs":[{"question":"what is your refund policy","answer":"Refunds are processed within 7 business days.","keywords":["refund"],"tags":["payments"]}]}`))
	}))
	t.Cleanup(faqSrv.Close)

	productSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"title":"Budget Phone","price":7999,"currency":"INR"}]}`))
	}))
	t.Cleanup(productSrv.Close)

	t.Setenv("FAQ_API_URL", faqSrv.URL)
	t.Setenv("PRODUCT_API_URL", productSrv.URL)
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("LOG_FILE_PATH", filepath.Join(t.TempDir(), "app.log.csv"))

	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	return server.New(cfg, container).GetApp()
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/chatbot/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health dto.HealthResponse
	decodeBody(t, resp, &health)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "Chatbot API is running", health.Message)
}

func TestMessageEmptyBodyRejected(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing message field", body: `{}`},
		{name: "whitespace message", body: `{"message":"   "}`},
		{name: "malformed json", body: `{"message":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/chatbot/message", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var errBody dto.ErrorResponse
			decodeBody(t, resp, &errBody)
			assert.Equal(t, "Message is required", errBody.Error)
		})
	}
}

func TestMessageFaqReply(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/chatbot/message", `{"message":"what is your refund policy?"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reply dto.SendMessageResponse
	decodeBody(t, resp, &reply)
	assert.Equal(t, "Refunds are processed within 7 business days.", reply.Response)
	assert.Equal(t, "default", reply.SessionId)
}

func TestMessageRuleReplyKeepsSessionId(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/chatbot/message", `{"message":"how do I pay?","sessionId":"s-1"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reply dto.SendMessageResponse
	decodeBody(t, resp, &reply)
	assert.Contains(t, reply.Response, "UPI, Credit/Debit Cards")
	assert.Equal(t, "s-1", reply.SessionId)
}

func TestResetEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/chatbot/reset", `{"sessionId":"s-9"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reset dto.ResetResponse
	decodeBody(t, resp, &reset)
	assert.Equal(t, "Conversation reset successfully", reset.Message)
	assert.Equal(t, "s-9", reset.SessionId)

	// Reset tolerates a missing body.
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot/reset", nil)
	respNoBody, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, respNoBody.StatusCode)

	decodeBody(t, respNoBody, &reset)
	assert.Equal(t, "default", reset.SessionId)
}
