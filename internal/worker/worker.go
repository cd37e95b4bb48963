package worker

import (
	"context"
	"log/slog"
)

const Name = "worker"

type Worker struct {
	Log *slog.Logger
}

func New(log *slog.Logger) *Worker {
	return &Worker{Log: log}
}

// Run пишет сообщение о старте и возвращается: рабочего цикла у воркера пока нет
func (w *Worker) Run(ctx context.Context) error {
	w.Log.InfoContext(ctx, "bot started")
	return nil
}
