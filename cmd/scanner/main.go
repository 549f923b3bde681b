package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"divscan-go/internal/config"
	"divscan-go/internal/scanner"
	"divscan-go/internal/service"
)

func main() {
	// Global panic recovery
	defer service.RecoverAndLog("main")

	// Load configuration
	config.Load()
	cfg := config.AppConfig

	log.Println("🔧 Initializing services...")

	binanceService := service.NewBinanceService(cfg.BinanceBaseURL)

	analysisCfg := service.DefaultAnalysisConfig()
	if err := analysisCfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid analysis configuration: %v", err)
	}
	strategyService := service.NewStrategyService(binanceService, analysisCfg, cfg.KlineLimit)

	// Telegram is optional; the scanner renders to stdout either way
	var telegramService *service.TelegramService
	if cfg.TelegramBotToken != "" {
		var err error
		telegramService, err = service.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Telegram service: %v", err)
		}
	} else {
		log.Println("ℹ️  No TELEGRAM_BOT_TOKEN set - notifications disabled")
	}

	log.Println("✅ All services initialized successfully")

	scan := scanner.New(
		strategyService,
		telegramService,
		cfg.Symbols,
		cfg.Timeframes,
		time.Duration(cfg.FetchDelayMs)*time.Millisecond,
		cfg.ScanWorkers,
	)

	// Handle graceful shutdown
	go func() {
		defer service.RecoverAndLog("shutdown handler")
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("\n🛑 Received shutdown signal...")
		os.Exit(0)
	}()

	// Blocks forever when a schedule is configured, otherwise scans once
	scan.Start(cfg.ScanSchedule)
}
