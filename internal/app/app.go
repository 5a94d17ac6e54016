// Package app implements the application layer for tldr.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/tldr/internal/adapters/detector"
	"go.trai.ch/tldr/internal/build"
	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports"
	"go.trai.ch/tldr/internal/engine/resolver"
	"go.trai.ch/tldr/internal/engine/streamer"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	fetcher      ports.PageFetcher
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fetcher ports.PageFetcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		fetcher:      fetcher,
		logger:       log,
		tracer:       tracer,
	}
}

// WithLogOutput directs log records to w. A nil writer restores stderr.
func (a *App) WithLogOutput(w io.Writer) *App {
	if w == nil {
		w = os.Stderr
	}
	a.logger.SetOutput(w)
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath selects the config file. Empty means the default location.
	ConfigPath string
	// Platform overrides the platform of the fallback attempt.
	Platform string
	// Verbose enables debug logging.
	Verbose bool
	// LogFormat is one of "auto", "pretty" or "json".
	LogFormat string
}

// Run looks up the page for name and writes it to stdout unchanged.
func (a *App) Run(ctx context.Context, name string, stdout io.Writer, opts RunOptions) error {
	if err := a.configureLogging(opts); err != nil {
		return err
	}

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	page, err := domain.NewPageName(name)
	if err != nil {
		return err
	}

	fallback, err := fallbackPlatform(opts.Platform, cfg)
	if err != nil {
		return err
	}

	src := cfg.Source(build.UserAgent())
	a.logger.Debug("resolving page", "page", page, "base_url", src.BaseURL, "fallback", fallback.String())

	body, err := resolver.New(a.fetcher, a.tracer, fallback).Resolve(ctx, src, page)
	if err != nil {
		return err
	}
	defer func() {
		_ = body.Close()
	}()

	written, err := streamer.Copy(stdout, body)
	if err != nil {
		return err
	}

	a.logger.Debug("page written", "bytes", written)
	return nil
}

func (a *App) configureLogging(opts RunOptions) error {
	format, err := detector.ResolveLogFormat(detector.DetectEnvironment(), opts.LogFormat)
	if err != nil {
		return err
	}

	a.logger.SetJSON(format == detector.FormatJSON)
	a.logger.SetVerbose(opts.Verbose)
	return nil
}

// fallbackPlatform picks the platform of the second attempt: flag, then config, then host.
func fallbackPlatform(flag string, cfg *domain.Config) (domain.Platform, error) {
	if flag != "" {
		return domain.ParsePlatform(flag)
	}
	if cfg.Platform != "" {
		return cfg.Platform, nil
	}
	return domain.HostPlatform, nil
}
