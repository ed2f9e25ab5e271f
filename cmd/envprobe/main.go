// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command envprobe prints whether the Telegram bot credentials are present in
// its environment and then stays alive until it receives SIGINT or SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/stacklok/envprobe/env"
	"github.com/stacklok/envprobe/keepalive"
	"github.com/stacklok/envprobe/logger"
	"github.com/stacklok/envprobe/probe"
)

func main() {
	logger.Initialize()
	defer logger.Sync()

	reporter := probe.NewReporter(&env.OSReader{}, os.Stdout)
	if err := reporter.ReportAll(); err != nil {
		logger.Errorw("failed to write environment report", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infow("environment report written, waiting for stop signal", "keys", probe.Keys)
	_ = keepalive.Wait(ctx)
	logger.Info("stop signal received, exiting")
}
