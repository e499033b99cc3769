package bootstrap

import (
	"log"

	"cs-chatbot-be/internal/config"
	"cs-chatbot-be/internal/controller"
	"cs-chatbot-be/internal/pkg/logger"
	"cs-chatbot-be/internal/repository/memory"
	"cs-chatbot-be/internal/service"
	"cs-chatbot-be/pkg/catalog"
	"cs-chatbot-be/pkg/chatbot"
	"cs-chatbot-be/pkg/faq"
	"cs-chatbot-be/pkg/llm"
	"cs-chatbot-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController

	// Exposed for shutdown flushing
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	llmTraceLogger := logger.NewIsolatedLogger("logs/llm_chat.log")

	// 2. Completion provider. A missing Groq key is a supported degraded
	// mode: the generator declines and the FAQ/rule tiers answer.
	var llmProvider llm.LLMProvider
	if cfg.Ai.LLMProvider == "groq" && cfg.Keys.Groq == "" {
		log.Printf("[WARN] GROQ_API_KEY not set; AI generation disabled, FAQ/rule fallback only")
	} else {
		provider, err := factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			cfg.Ai.OllamaBaseURL,
			cfg.Keys.Groq,
			cfg.Ai.Timeout,
		)
		if err != nil {
			log.Printf("[WARN] Failed to initialize LLM Provider: %v; AI generation disabled", err)
		} else {
			llmProvider = provider
			log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
		}
	}

	// 3. Collaborator accessors
	faqCache := memory.NewFaqCache()
	faqStore := faq.NewStore(cfg.Services.FaqAPIURL, cfg.Services.FetchTimeout, faqCache, sysLogger)
	faqMatcher := faq.NewMatcher(cfg.Chat.FaqMatchThreshold)

	catalogFetcher := catalog.NewContextFetcher(
		cfg.Services.ProductAPIURL,
		cfg.Services.FetchTimeout,
		cfg.Chat.ContextMaxItems,
		cfg.Chat.QueryMaxLen,
		sysLogger,
	)

	generator := chatbot.NewGenerator(
		llmProvider,
		cfg.Ai.Temperature,
		cfg.Ai.MaxTokens,
		cfg.Ai.Timeout,
		sysLogger,
		llmTraceLogger,
	)

	// 4. Services & Controllers
	chatbotService := service.NewChatbotService(faqStore, faqMatcher, catalogFetcher, generator, sysLogger)

	return &Container{
		ChatbotController: controller.NewChatbotController(chatbotService, sysLogger),
		Logger:            sysLogger,
	}
}
