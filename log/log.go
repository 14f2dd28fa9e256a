// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

// Package log provides the small leveled-logging API that Drawing readers
// and writers use to report recovered (non-fatal) conditions, mirroring
// the saferwall/pe log package's shape but backed by logrus.
package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Level is a log severity, ordered from least to most severe.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Logger emits a leveled record as alternating key/value pairs.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

type logrusLogger struct {
	entry *logrus.Logger
}

// NewStdLogger returns a Logger that writes JSON-free, logfmt-ish lines to
// w via logrus's text formatter, matching pe's NewStdLogger(os.Stdout).
func NewStdLogger(w io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &logrusLogger{entry: l}
}

func (l *logrusLogger) Log(level Level, keyvals ...interface{}) error {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keyvals); i += 2 {
		key := fmt.Sprintf("%v", keyvals[i])
		fields[key] = keyvals[i+1]
	}
	entry := l.entry.WithFields(fields)
	switch level {
	case LevelDebug:
		entry.Debug()
	case LevelInfo:
		entry.Info()
	case LevelWarn:
		entry.Warn()
	case LevelError:
		entry.Error()
	case LevelFatal:
		entry.Error()
	}
	return nil
}

// filter wraps a Logger and drops records below level.
type filter struct {
	logger Logger
	level  Level
}

// FilterOption configures a filter built by NewFilter.
type FilterOption func(*filter)

// FilterLevel sets the minimum level the filter lets through.
func FilterLevel(level Level) FilterOption {
	return func(f *filter) { f.level = level }
}

// NewFilter returns a Logger that drops records below the configured
// level, defaulting to LevelInfo with no options.
func NewFilter(logger Logger, opts ...FilterOption) Logger {
	f := &filter{logger: logger, level: LevelInfo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.logger.Log(level, keyvals...)
}

// Helper adds printf-style convenience methods on top of a Logger, the way
// saferwall/pe's file.logger (a *log.Helper) is used throughout file.go.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger. A nil logger makes every call a silent no-op,
// so callers that skip configuring a logger never need a nil check.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, msg string) {
	if h == nil || h.logger == nil {
		return
	}
	_ = h.logger.Log(level, "msg", msg)
}

func (h *Helper) Debug(args ...interface{})            { h.log(LevelDebug, fmt.Sprint(args...)) }
func (h *Helper) Debugf(format string, a ...interface{}) { h.log(LevelDebug, fmt.Sprintf(format, a...)) }
func (h *Helper) Info(args ...interface{})             { h.log(LevelInfo, fmt.Sprint(args...)) }
func (h *Helper) Infof(format string, a ...interface{}) { h.log(LevelInfo, fmt.Sprintf(format, a...)) }
func (h *Helper) Warn(args ...interface{})             { h.log(LevelWarn, fmt.Sprint(args...)) }
func (h *Helper) Warnf(format string, a ...interface{}) { h.log(LevelWarn, fmt.Sprintf(format, a...)) }
func (h *Helper) Error(args ...interface{})            { h.log(LevelError, fmt.Sprint(args...)) }
func (h *Helper) Errorf(format string, a ...interface{}) { h.log(LevelError, fmt.Sprintf(format, a...)) }
func (h *Helper) Fatal(args ...interface{})            { h.log(LevelFatal, fmt.Sprint(args...)) }
func (h *Helper) Fatalf(format string, a ...interface{}) { h.log(LevelFatal, fmt.Sprintf(format, a...)) }
