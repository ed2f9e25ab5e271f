// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package keepalive holds a process open after its work is done so that
// external log collectors can read what it printed.
package keepalive

import (
	"context"

	"github.com/stacklok/envprobe/logger"
)

// Wait blocks until ctx is done and returns ctx.Err().
// It performs no work while blocked.
func Wait(ctx context.Context) error {
	logger.Debug("holding process open until cancelled")
	<-ctx.Done()
	logger.Debugw("keepalive released", "reason", ctx.Err())
	return ctx.Err()
}
