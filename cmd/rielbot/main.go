package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sokchea/rielbot/internal/api"
	"github.com/sokchea/rielbot/internal/bot"
	"github.com/sokchea/rielbot/internal/config"
	"github.com/sokchea/rielbot/internal/ledger"
	"github.com/sokchea/rielbot/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open the ledger backing
	st, err := openStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to open ledger store: %v", err)
	}
	defer st.Close()

	svc := ledger.NewService(st)

	// Initialize Discord bot
	discordBot, err := bot.New(cfg, svc)
	if err != nil {
		log.Fatalf("Failed to create discord bot: %v", err)
	}

	// Initialize API server
	apiServer := api.New(cfg, svc)

	// Start Discord bot
	if err := discordBot.Start(); err != nil {
		log.Fatalf("Failed to start discord bot: %v", err)
	}
	defer discordBot.Stop()

	// Start API server
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Printf("API server error: %v", err)
		}
	}()

	// Wait for signal to stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.LedgerBackend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendFile:
		return store.NewFile(cfg.LedgerFile), nil
	case config.BackendPostgres:
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := pg.RunMigrations(ctx); err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}
}
