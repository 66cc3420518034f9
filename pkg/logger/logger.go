// Package logger оборачивает zerolog в printf-интерфейс, который используется во всем сервисе.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger пишет в консоль и (опционально) в файл
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New создает логгер. Пустой file означает вывод только в stdout.
// level: debug, info, warn, error (по умолчанию info)
func New(file string, level string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	writers := []io.Writer{console}

	var f *os.File
	if file != "" {
		f, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", file, err)
		}
		writers = append(writers, f)
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl, file: f}, nil
}

// NewWithZerolog оборачивает готовый zerolog.Logger (удобно в тестах: zerolog.New(io.Discard))
func NewWithZerolog(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal логирует и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
	l.Close()
	os.Exit(1)
}

// Zerolog возвращает нижележащий zerolog.Logger для компонентов со структурированным логированием
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zl
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
