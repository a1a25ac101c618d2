package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/stijndebels/ChessProjectCPL/internal/board"
	"github.com/stijndebels/ChessProjectCPL/internal/config"
	"github.com/stijndebels/ChessProjectCPL/internal/engine"
	"github.com/stijndebels/ChessProjectCPL/internal/search"
	"github.com/stijndebels/ChessProjectCPL/internal/uci"
)

// App holds the configured engine and its logger.
type App struct {
	cfg    *config.Config
	engine engine.Engine
	logger *slog.Logger
	closer io.Closer
}

// NewApp opens the log sink named by cfg and creates the search engine.
func NewApp(cfg *config.Config) (*App, error) {
	logger, closer, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	logger.Info("detected CPU features", "cpu", config.DetectCPUFeatures())

	return &App{
		cfg:    cfg,
		engine: search.New(cfg),
		logger: logger,
		closer: closer,
	}, nil
}

// newLogger builds a text logger writing to the configured file, or one
// that discards everything when no file is configured.
func newLogger(lc config.LogConfig) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, err
	}
	if lc.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}

	f, err := os.Create(lc.File)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

// RunUCI runs the command loop on in and out.
func (a *App) RunUCI(ctx context.Context, in io.Reader, out io.Writer) error {
	return uci.New(a.engine, in, out, a.logger).Run(ctx)
}

// PrintPV searches pos once and writes "PV: <line>" to out.
func (a *App) PrintPV(ctx context.Context, pos *board.Position, out io.Writer) error {
	pv, err := a.engine.PrincipalVariation(ctx, pos, nil)
	if err != nil {
		return err
	}
	a.logger.Info("PV", "pv", pv.String())
	_, err = fmt.Fprintf(out, "PV: %s\n", pv)
	return err
}

// Close releases the log sink.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
