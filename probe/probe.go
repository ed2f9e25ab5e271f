// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/stacklok/envprobe/env"
)

const (
	// TokenKey names the variable holding the bot authentication token.
	TokenKey = "TELEGRAM_TOKEN"
	// ChatIDKey names the variable holding the target chat or channel identifier.
	ChatIDKey = "TELEGRAM_CHAT_ID"

	// PreviewLength is the maximum number of characters shown in a preview.
	PreviewLength = 6
)

// Keys lists the probed variables in report order.
var Keys = []string{TokenKey, ChatIDKey}

// Report is the outcome of looking up a single environment variable.
type Report struct {
	Key     string
	Present bool
	// Length is the number of characters in the value.
	Length int
	// Preview is the quoted form of the first PreviewLength characters.
	Preview string
}

// Inspect looks up key once and builds its Report.
func Inspect(reader env.Reader, key string) Report {
	value, ok := reader.LookupEnv(key)
	if !ok {
		return Report{Key: key}
	}
	return Report{
		Key:     key,
		Present: true,
		Length:  utf8.RuneCountInString(value),
		Preview: Quote(head(value, PreviewLength)),
	}
}

// String renders the report line without a trailing newline.
func (r Report) String() string {
	if !r.Present {
		return fmt.Sprintf("%s = None", r.Key)
	}
	return fmt.Sprintf("%s LEN= %d START= %s", r.Key, r.Length, r.Preview)
}

// head returns the first n characters of s. Invalid UTF-8 bytes count as one
// character each.
func head(s string, n int) string {
	i := 0
	for count := 0; i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// Reporter writes one diagnostic line per probed variable.
type Reporter struct {
	reader env.Reader
	out    io.Writer
}

// NewReporter creates a Reporter that reads from reader and writes to out.
func NewReporter(reader env.Reader, out io.Writer) *Reporter {
	return &Reporter{
		reader: reader,
		out:    out,
	}
}

// Report looks up key and writes its line.
func (r *Reporter) Report(key string) error {
	if _, err := fmt.Fprintln(r.out, Inspect(r.reader, key)); err != nil {
		return fmt.Errorf("failed to write report for %s: %w", key, err)
	}
	return nil
}

// ReportAll reports every entry of Keys in order, stopping at the first
// write error.
func (r *Reporter) ReportAll() error {
	for _, key := range Keys {
		if err := r.Report(key); err != nil {
			return err
		}
	}
	return nil
}
