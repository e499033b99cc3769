package main

import (
	"context"
	"log"

	"cs-chatbot-be/internal/bootstrap"
	"cs-chatbot-be/internal/config"
	"cs-chatbot-be/internal/server"
	"cs-chatbot-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Printf("Chatbot API server starting on port %s", cfg.App.Port)
	log.Println("Welcome to the Market Connect customer service API!")
	log.Fatal(srv.Run())
}
