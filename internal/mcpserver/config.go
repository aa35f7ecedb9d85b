package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/casetools/caser"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DefaultConvention is used by tools when no target is specified.
	DefaultConvention caser.Convention

	// MaxInputBytes bounds inline content and file sizes for recase_keys.
	MaxInputBytes int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASETOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultConvention: envConvention("CASETOOLS_DEFAULT_CASE", caser.ConventionCamel),
		MaxInputBytes:     envInt("CASETOOLS_MAX_INPUT_BYTES", 1<<20),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envConvention(key string, fallback caser.Convention) caser.Convention {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	c, err := caser.ParseConvention(v)
	if err != nil {
		slog.Warn("invalid convention env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return c
}
