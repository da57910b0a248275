package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/spotdemo4/tamil-insight/internal/api"
	"github.com/spotdemo4/tamil-insight/internal/ctxutil"
	"github.com/spotdemo4/tamil-insight/internal/tui"
)

const healthTimeout = 10 * time.Second

// Analyzer is the part of the backend client the worker needs.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*api.AnalysisResponse, error)
	Health(ctx context.Context) (*api.Health, error)
}

type Worker struct {
	client Analyzer
	logger *slog.Logger

	output chan<- tui.Msg
	wg     sync.WaitGroup
}

func New(client Analyzer, logger *slog.Logger, output chan<- tui.Msg) *Worker {
	return &Worker{
		client: client,
		logger: logger,
		output: output,
	}
}

// Run checks backend health, then serves requests until ctx is done. Each
// request runs on its own goroutine, so replies are reported in the order
// they arrive rather than the order they were asked for.
func (w *Worker) Run(ctx context.Context, requests <-chan string) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_, _ = w.CheckHealth(ctx)
	}()

	for {
		text, ok := ctxutil.Next(ctx, requests)
		if !ok {
			break
		}

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			ctxutil.Send(ctx, w.output, w.Analyze(ctx, text))
		}()
	}

	w.wg.Wait()
}

// Analyze performs one request and turns its outcome into a message.
func (w *Worker) Analyze(ctx context.Context, text string) tui.Msg {
	start := time.Now()

	data, err := w.client.Analyze(ctx, text)
	if err != nil {
		w.logger.Error("analysis failed",
			"error", err,
			"backend_error", api.IsBackendError(err),
			"duration", time.Since(start),
		)

		return tui.Msg{
			Type: tui.MsgError,
			Text: err.Error(),
		}
	}

	w.logger.Info("analysis complete",
		"source", data.Source,
		"confidence", data.SentimentConfidence,
		"duration", time.Since(start),
	)

	return tui.Msg{
		Type: tui.MsgResult,
		Data: data,
	}
}

// CheckHealth reports backend readiness. Problems are logged as warnings
// and never reach the user interface.
func (w *Worker) CheckHealth(ctx context.Context) (*api.Health, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	health, err := w.client.Health(ctx)
	if err != nil {
		w.logger.Warn("backend health check failed", "error", err)
		return nil, err
	}

	if !health.ModelsLoaded {
		w.logger.Warn("backend models not loaded")
	}
	if !health.DatabaseLoaded {
		w.logger.Warn("backend database not loaded")
	}
	if health.Ready() {
		w.logger.Info("backend ready", "verse_count", health.VerseCount)
	}

	return health, nil
}
