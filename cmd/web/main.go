package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/admin/tg-bots/bot-skeleton/internal/app"
)

const appName = "web"

func main() {
	cfg, err := app.NewEnvConfig()
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New(appName, cfg)

	err1 := app.Run(ctx)
	if err1 != nil {
		panic(err1)
	}
}
