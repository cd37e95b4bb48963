package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/admin/tg-bots/bot-skeleton/internal/app"
	"github.com/admin/tg-bots/bot-skeleton/internal/pkg/logger"
	"github.com/admin/tg-bots/bot-skeleton/internal/worker"
)

func main() {
	cfg, err := app.NewEnvConfig()
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New(worker.Name, cfg.Log)
	logger.SetDefault(log)

	if err := worker.New(log).Run(ctx); err != nil {
		panic(err)
	}
}
