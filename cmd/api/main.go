package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pageza/recipebook/backend/config"
	"github.com/pageza/recipebook/backend/internal/logger"
	"github.com/pageza/recipebook/backend/internal/model"
	"github.com/pageza/recipebook/backend/internal/server"
	"github.com/pageza/recipebook/backend/internal/service"
)

func main() {
	l := logger.New(os.Stderr, log.InfoLevel)

	cfg, err := config.LoadConfig()
	if err != nil {
		l.Fatal("failed to load configuration", "err", err)
	}
	level, _ := logger.ParseLevel(cfg.LogLevel)
	l.SetLevel(level)

	var seed []model.DraftRecipe
	if cfg.SeedRecipes {
		seed = service.SeedRecipes()
	}
	store := service.NewRecipeStore(l, cfg.PlaceholderImage, seed)

	srv := server.New(cfg, store, l)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			l.Fatal("server error", "err", err)
		}
		return
	case sig := <-quit:
		l.Info("received signal", "signal", sig)
	}

	l.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Fatal("server shutdown error", "err", err)
	}
	l.Info("server stopped")
}
