package chatbot

import (
	"context"
	"strings"
	"time"

	"cs-chatbot-be/internal/constant"
	"cs-chatbot-be/internal/pkg/logger"
	"cs-chatbot-be/pkg/llm"
)

// Generator composes the customer-service prompt and delegates to the
// completion provider. A nil provider means no credential is configured;
// Generate then declines immediately and the orchestrator falls back.
type Generator struct {
	provider    llm.LLMProvider
	temperature float64
	maxTokens   int
	timeout     time.Duration
	log         logger.ILogger
	trace       logger.ILogger
}

func NewGenerator(provider llm.LLMProvider, temperature float64, maxTokens int, timeout time.Duration, log, trace logger.ILogger) *Generator {
	return &Generator{
		provider:    provider,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
		log:         log,
		trace:       trace,
	}
}

// Generate returns the AI reply, or false when generation is unavailable
// or fails. Failures never propagate: the caller always has a fallback.
func (g *Generator) Generate(ctx context.Context, userText, faqAnswer, productContext string, isProductQuery bool) (string, bool) {
	if g.provider == nil {
		return "", false
	}

	userPrompt := g.buildUserPrompt(userText, faqAnswer, productContext, isProductQuery)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.trace.Info("generator", "LLM request", map[string]interface{}{
		"prompt":           userPrompt,
		"is_product_query": isProductQuery,
	})

	reply, err := g.provider.Chat(callCtx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.ChatSystemPromptV1},
		{Role: constant.ChatMessageRoleUser, Content: userPrompt},
	},
		llm.WithTemperature(g.temperature),
		llm.WithMaxTokens(g.maxTokens),
	)
	if err != nil {
		g.log.Warn("generator", "LLM generation failed", map[string]interface{}{"error": err.Error()})
		return "", false
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		g.log.Warn("generator", "LLM returned empty reply", nil)
		return "", false
	}

	g.trace.Info("generator", "LLM response", map[string]interface{}{"reply": reply})
	return reply, true
}

func (g *Generator) buildUserPrompt(userText, faqAnswer, productContext string, isProductQuery bool) string {
	var prompt strings.Builder

	prompt.WriteString("Customer question: ")
	prompt.WriteString(userText)
	prompt.WriteString("\n")

	if faqAnswer != "" {
		prompt.WriteString("\n")
		prompt.WriteString(constant.FaqGuidancePreamble)
		prompt.WriteString("\n")
		prompt.WriteString(faqAnswer)
		prompt.WriteString("\n")
	}

	if isProductQuery {
		prompt.WriteString("\n")
		prompt.WriteString(constant.NeverRefuseDirective)
		prompt.WriteString("\n")
	}

	if productContext != "" {
		prompt.WriteString("\n")
		prompt.WriteString(constant.ProductContextPreamble)
		prompt.WriteString("\n")
		prompt.WriteString(productContext)
		prompt.WriteString("\n")
	}

	return prompt.String()
}
