package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/admin/tg-bots/bot-skeleton/internal/app"
	"github.com/admin/tg-bots/bot-skeleton/internal/pkg/logger"
	webhookUsecase "github.com/admin/tg-bots/bot-skeleton/internal/usecases/webhook"
)

const appName = "register_webhook"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	envFile := fs.String("env-file", webhookUsecase.DefaultEnvFile, "path to the env file with BOT_TOKEN, APP_BASE_URL, WEBHOOK_SECRET")
	deleteHook := fs.Bool("delete", false, "remove the webhook instead of registering it")
	apiURL := fs.String("api-url", "", "Bot API base URL (default https://api.telegram.org)")
	logLevel := fs.String("log-level", "warn", "log level for diagnostics written to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logger.New(appName, &logger.Config{Encoding: logger.EncodingJSON, Level: *logLevel}, logger.WithOutput(stderr))

	err := app.RunWebhookCommand(ctx, app.WebhookCommand{
		EnvFile: *envFile,
		Delete:  *deleteHook,
		APIURL:  *apiURL,
		Stdout:  stdout,
		Log:     log,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}
