package service

import (
	"context"
	"errors"
	"strings"

	"cs-chatbot-be/internal/constant"
	"cs-chatbot-be/internal/dto"
	"cs-chatbot-be/internal/pkg/logger"
	"cs-chatbot-be/pkg/catalog"
	"cs-chatbot-be/pkg/chatbot"
	"cs-chatbot-be/pkg/faq"
)

// ErrMessageRequired is returned when the trimmed message is empty.
var ErrMessageRequired = errors.New("Message is required")

// IChatbotService defines the chatbot service interface
type IChatbotService interface {
	Health() *dto.HealthResponse
	SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	ResetConversation(ctx context.Context, request *dto.ResetRequest) *dto.ResetResponse
}

// chatbotService orchestrates the reply strategies per incoming message.
// Consultation order: FAQ match first, then product context for product
// queries, then AI generation with the FAQ answer as guidance; if the
// generator declines, the FAQ answer is used directly; the rule-based
// fallback answers last and cannot fail.
type chatbotService struct {
	faqStore   *faq.Store
	faqMatcher *faq.Matcher
	catalogCtx *catalog.ContextFetcher
	generator  *chatbot.Generator
	log        logger.ILogger
}

func NewChatbotService(
	faqStore *faq.Store,
	faqMatcher *faq.Matcher,
	catalogCtx *catalog.ContextFetcher,
	generator *chatbot.Generator,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		faqStore:   faqStore,
		faqMatcher: faqMatcher,
		catalogCtx: catalogCtx,
		generator:  generator,
		log:        log,
	}
}

func (cs *chatbotService) Health() *dto.HealthResponse {
	return &dto.HealthResponse{
		Status:  "ok",
		Message: "Chatbot API is running",
	}
}

// SendMessage runs the per-request state machine. No state is retained
// across requests; the only shared mutable value is the FAQ snapshot.
func (cs *chatbotService) SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	message := strings.TrimSpace(request.Message)
	if message == "" {
		return nil, ErrMessageRequired
	}

	sessionId := request.SessionId
	if sessionId == "" {
		sessionId = constant.DefaultSessionId
	}

	productQuery := isProductQuery(message)

	// FAQ match runs against the snapshot taken by this one GetFaqs call,
	// so a concurrent refresh cannot tear the match.
	faqAnswer, faqMatched := cs.faqMatcher.FindBestAnswer(message, cs.faqStore.GetFaqs(ctx))
	if faqMatched {
		cs.log.Debug("chatbot", "FAQ matched", map[string]interface{}{"session_id": sessionId})
	}

	productContext := ""
	if productQuery {
		if fetched, ok := cs.catalogCtx.FetchContext(ctx, message); ok {
			productContext = fetched
		}
	}

	reply, generated := cs.generator.Generate(ctx, message, faqAnswer, productContext, productQuery)
	tier := "ai"
	if !generated {
		if faqMatched {
			reply = faqAnswer
			tier = "faq"
		} else {
			reply = chatbot.Fallback(message)
			tier = "rules"
		}
	}

	cs.log.Info("chatbot", "Reply produced", map[string]interface{}{
		"session_id":       sessionId,
		"tier":             tier,
		"is_product_query": productQuery,
	})

	return &dto.SendMessageResponse{
		Response:  reply,
		SessionId: sessionId,
	}, nil
}

// ResetConversation acknowledges a reset. No history is kept, so there is
// nothing to mutate.
func (cs *chatbotService) ResetConversation(ctx context.Context, request *dto.ResetRequest) *dto.ResetResponse {
	sessionId := request.SessionId
	if sessionId == "" {
		sessionId = constant.DefaultSessionId
	}
	return &dto.ResetResponse{
		Message:   "Conversation reset successfully",
		SessionId: sessionId,
	}
}

func isProductQuery(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range constant.ProductQueryKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
