// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package probe reports the presence, length and a short quoted preview of the
Telegram credentials a bot container expects in its environment.

Each key produces exactly one line:

	TELEGRAM_TOKEN = None
	TELEGRAM_CHAT_ID LEN= 8 START= '123456'

The preview never shows more than [PreviewLength] characters, and control
characters, quotes and undecodable bytes are escaped so the line is
unambiguous in collected logs.

# Usage

	reporter := probe.NewReporter(&env.OSReader{}, os.Stdout)
	if err := reporter.ReportAll(); err != nil {
		logger.Errorw("failed to write report", "error", err)
	}
*/
package probe
