// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in printed messages.
// Color is only emitted when the output is also a terminal.
var UseColor = true

// Output is where the Print functions write. It defaults to [os.Stdout].
var Output io.Writer = os.Stdout

// LevelColor returns the terminal color used for the given level.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

// ApplyColor returns the given string styled with the color for the
// given level, for the terminal profile of the given writer.
func ApplyColor(w io.Writer, level slog.Level, str string) string {
	if !UseColor {
		return str
	}
	out := termenv.NewOutput(w)
	return out.String(str).Foreground(LevelColor(level)).String()
}

// Println is equivalent to [fmt.Fprintln] on [Output], but with color
// based on the given level. Also, if [UserLevel] is above the given
// level, it does not print anything.
func Println(level slog.Level, a ...any) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	s := fmt.Sprintln(a...)
	return fmt.Fprint(Output, ApplyColor(Output, level, s[:len(s)-1])+"\n")
}

// Printf is equivalent to [fmt.Fprintf] on [Output], but with color
// based on the given level. Also, if [UserLevel] is above the given
// level, it does not print anything.
func Printf(level slog.Level, format string, a ...any) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	return fmt.Fprint(Output, ApplyColor(Output, level, fmt.Sprintf(format, a...)))
}

// PrintlnDebug is equivalent to [Println] with [slog.LevelDebug].
func PrintlnDebug(a ...any) (n int, err error) {
	return Println(slog.LevelDebug, a...)
}

// PrintlnInfo is equivalent to [Println] with [slog.LevelInfo].
func PrintlnInfo(a ...any) (n int, err error) {
	return Println(slog.LevelInfo, a...)
}

// PrintlnWarn is equivalent to [Println] with [slog.LevelWarn].
func PrintlnWarn(a ...any) (n int, err error) {
	return Println(slog.LevelWarn, a...)
}

// PrintlnError is equivalent to [Println] with [slog.LevelError].
func PrintlnError(a ...any) (n int, err error) {
	return Println(slog.LevelError, a...)
}

// PrintfInfo is equivalent to [Printf] with [slog.LevelInfo].
func PrintfInfo(format string, a ...any) (n int, err error) {
	return Printf(slog.LevelInfo, format, a...)
}
