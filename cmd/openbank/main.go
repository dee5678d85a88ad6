package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/app"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/util/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfigFromFlags()

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}
	defer application.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Log.Info("Shutting down server...")
		cancel()
	}()

	logger.Log.Info("Starting HTTP server",
		zap.String("address", cfg.RunAddress))
	if err := application.Run(ctx); err != nil {
		logger.Log.Error("Server shutdown error", zap.Error(err))
	}
}
