package cmd

import (
	"context"
	"os"

	"github.com/go-drift/embedui/cmd/embedui/internal/scenario"
	"github.com/go-drift/embedui/pkg/config"
	"github.com/go-drift/embedui/pkg/theme"
)

// env is the resolved project a command runs in.
type env struct {
	cfg   *config.Resolved
	theme *theme.Theme
}

func loadEnv(ctx context.Context, dir string) (*env, error) {
	logger := loggerFromContext(ctx)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
		if root, err := config.FindProjectRoot(wd); err == nil {
			dir = root
		} else {
			logger.Debug("using working directory", "reason", err)
		}
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("config resolved", "root", cfg.Root, "app", cfg.AppName,
		"size", []int{cfg.Width, cfg.Height}, "ink_time", cfg.InkTime)

	th := theme.Default()
	if cfg.Theme != "" {
		if th, err = theme.Load(cfg.Theme); err != nil {
			return nil, err
		}
		logger.Debug("theme loaded", "path", cfg.Theme, "name", th.Name)
	}
	return &env{cfg: cfg, theme: th}, nil
}

func (e *env) options(ctx context.Context) scenario.Options {
	opts := scenario.OptionsFrom(e.cfg)
	opts.Theme = e.theme
	opts.Logger = loggerFromContext(ctx)
	return opts
}
