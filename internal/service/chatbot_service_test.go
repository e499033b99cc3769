package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cs-chatbot-be/internal/dto"
	"cs-chatbot-be/internal/pkg/logger"
	"cs-chatbot-be/internal/repository/memory"
	"cs-chatbot-be/pkg/catalog"
	"cs-chatbot-be/pkg/chatbot"
	"cs-chatbot-be/pkg/faq"
	"cs-chatbot-be/pkg/llm"
)

type stubLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (p *stubLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) > 0 {
		p.lastPrompt = history[len(history)-1].Content
	}
	return p.reply, p.err
}

func (p *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	p.lastPrompt = prompt
	return p.reply, p.err
}

func newTestService(t *testing.T, faqURL, productURL string, provider llm.LLMProvider) IChatbotService {
	t.Helper()
	dir := t.TempDir()
	log := logger.NewIsolatedLogger(filepath.Join(dir, "app.log"))
	trace := logger.NewIsolatedLogger(filepath.Join(dir, "trace.log"))

	store := faq.NewStore(faqURL, 5*time.Second, memory.NewFaqCache(), log)
	matcher := faq.NewMatcher(1.4)
	fetcher := catalog.NewContextFetcher(productURL, 5*time.Second, 5, 100, log)
	generator := chatbot.NewGenerator(provider, 0.4, 256, 15*time.Second, log, trace)

	return NewChatbotService(store, matcher, fetcher, generator, log)
}

func faqServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"faqs":[{"question":"what is your refund policy","answer":"Refunds are processed within 7 business days.","keywords":["refund","money back"],"tags":["payments"]}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func productServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"title":"Budget Phone","price":7999,"currency":"INR","ratingAvg":4.1,"stock":25}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func downServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSendMessageEmptyMessage(t *testing.T) {
	svc := newTestService(t, downServer(t).URL, downServer(t).URL, nil)

	_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrMessageRequired)
}

func TestSendMessageFaqTier(t *testing.T) {
	svc := newTestService(t, faqServer(t).URL, downServer(t).URL, nil)

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		Message: "what is your refund policy?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Refunds are processed within 7 business days.", resp.Response)
	assert.Equal(t, "default", resp.SessionId)
}

func TestSendMessageAiTierWithProductContext(t *testing.T) {
	provider := &stubLLM{reply: "The Budget Phone is a solid pick at 7999 INR."}
	svc := newTestService(t, faqServer(t).URL, productServer(t).URL, provider)

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		Message:   "can you recommend a phone?",
		SessionId: "s-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "The Budget Phone is a solid pick at 7999 INR.", resp.Response)
	assert.Equal(t, "s-42", resp.SessionId)
	assert.Contains(t, provider.lastPrompt, "Budget Phone; 7999.00 INR; rating 4.1/5; stock 25")
}

func TestSendMessageRulesTier(t *testing.T) {
	svc := newTestService(t, downServer(t).URL, downServer(t).URL, nil)

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		Message: "how do I update my shipping address?",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Response, "Edit Shipping Address")
}

func TestSendMessageFaqGuidesGenerator(t *testing.T) {
	provider := &stubLLM{reply: "Refunds take about a week, usually 7 business days."}
	svc := newTestService(t, faqServer(t).URL, downServer(t).URL, provider)

	resp, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		Message: "what is your refund policy?",
	})
	require.NoError(t, err)
	assert.Equal(t, provider.reply, resp.Response)
	assert.Contains(t, provider.lastPrompt, "Refunds are processed within 7 business days.")
}

func TestHealth(t *testing.T) {
	svc := newTestService(t, downServer(t).URL, downServer(t).URL, nil)

	resp := svc.Health()
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Chatbot API is running", resp.Message)
}

func TestResetConversation(t *testing.T) {
	svc := newTestService(t, downServer(t).URL, downServer(t).URL, nil)

	resp := svc.ResetConversation(context.Background(), &dto.ResetRequest{})
	assert.Equal(t, "Conversation reset successfully", resp.Message)
	assert.Equal(t, "default", resp.SessionId)

	resp = svc.ResetConversation(context.Background(), &dto.ResetRequest{SessionId: "abc"})
	assert.Equal(t, "abc", resp.SessionId)
}
