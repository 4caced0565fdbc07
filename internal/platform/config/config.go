// Package config loads process configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv は指定された.envファイルを読み込みます。
// ファイルが存在しない場合はシステム環境変数のみを使用します。
// 既に設定済みの環境変数は上書きしません。
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			slog.Info(".env not found; using system environment variables", "path", p)
		}
	}
}

// String returns the value of key, or def when it is unset or blank.
func String(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Duration parses key as a time.Duration ("10s", "1h").
// Unparseable or non-positive values fall back to def.
func Duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment; using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// Bool parses key with strconv.ParseBool. Unparseable values fall back to def.
func Bool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment; using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

// LogLevel maps LOG_LEVEL (debug|info|warn|error) to a slog.Level. Default is info.
func LogLevel() slog.Level {
	switch strings.ToLower(String("LOG_LEVEL", "info")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger installs a text slog handler on stderr at the configured level.
func SetupLogger() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LogLevel()})
	slog.SetDefault(slog.New(h))
}
