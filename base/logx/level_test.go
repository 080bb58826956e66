// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
}

func TestHandlerLevel(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)

	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf))

	UserLevel = slog.LevelWarn
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	// changes after construction take effect
	UserLevel = slog.LevelDebug
	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestPrint(t *testing.T) {
	oldLevel, oldOutput := UserLevel, Output
	defer func() {
		UserLevel = oldLevel
		Output = oldOutput
	}()

	var buf bytes.Buffer
	Output = &buf
	UserLevel = slog.LevelInfo

	PrintlnDebug("debug line")
	PrintlnInfo("info", "line")
	PrintfInfo("value %d\n", 3)
	PrintlnWarn("warn line")
	// a bytes.Buffer is not a terminal, so no escape codes are written
	assert.Equal(t, "info line\nvalue 3\nwarn line\n", buf.String())
}

func TestApplyColorDisabled(t *testing.T) {
	defer func(c bool) { UseColor = c }(UseColor)
	UseColor = false
	assert.Equal(t, "plain", ApplyColor(&bytes.Buffer{}, slog.LevelError, "plain"))
}
