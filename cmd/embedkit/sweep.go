package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/embedkit/internal/config"
	"github.com/mtlprog/embedkit/internal/service"
)

func runSweepSessions(c *cli.Context) error {
	ctx := c.Context

	cfg := serveConfig(c)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.SessionStore == config.SessionStoreMemory {
		return errors.New("the memory session store keeps nothing between runs")
	}

	b, err := openBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	_, err = service.NewSessionSweeper(b.sessions, cfg.SweepSchedule).Sweep(ctx)
	return err
}
