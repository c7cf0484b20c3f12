// Package logger builds the application's zap logger. Entries go to stderr, to a log
// file on disk and to an in-memory buffer the terminal overlay reads back.
package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFilePath is the log file, relative to the working directory.
const LogFilePath = "logs/credenza.log"

// maxLines bounds the in-memory history.
const maxLines = 500

// Logger is a zap logger that also keeps its recent output as text lines.
type Logger struct {
	*zap.Logger
	lines *lineBuffer
	file  *os.File
}

// New returns a logger writing to stderr, LogFilePath and memory. The logs directory is
// created if needed; when the file cannot be opened, file output is skipped.
func New() *Logger {
	var file *os.File
	if err := os.MkdirAll(filepath.Dir(LogFilePath), 0755); err == nil {
		file, _ = os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	}
	var fileSink zapcore.WriteSyncer
	if file != nil {
		fileSink = zapcore.AddSync(file)
	}
	l := build(zapcore.Lock(os.Stderr), fileSink)
	l.file = file
	return l
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""
	return cfg
}

// build tees console and file output with the line buffer. file may be nil.
func build(console, file zapcore.WriteSyncer) *Logger {
	lines := &lineBuffer{}
	enc := encoderConfig()
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(enc), console, zapcore.InfoLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(enc), lines, zapcore.InfoLevel),
	}
	if file != nil {
		fileEnc := zap.NewProductionEncoderConfig()
		fileEnc.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEnc), file, zapcore.DebugLevel))
	}
	return &Logger{Logger: zap.New(zapcore.NewTee(cores...)), lines: lines}
}

// Log records a line typed or shown in the terminal.
func (l *Logger) Log(line string) {
	l.Info(line)
}

// Lines returns a copy of the recent output, oldest first.
func (l *Logger) Lines() []string {
	return l.lines.snapshot()
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("close log: %w", err)
	}
	return nil
}

// lineBuffer is a zapcore.WriteSyncer keeping the last maxLines lines written to it.
type lineBuffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *lineBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, line := range strings.Split(string(bytes.TrimRight(p, "\n")), "\n") {
		b.lines = append(b.lines, strings.ReplaceAll(line, "\t", "  "))
	}
	if over := len(b.lines) - maxLines; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
	return len(p), nil
}

func (b *lineBuffer) Sync() error { return nil }

func (b *lineBuffer) snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}
