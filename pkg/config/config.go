// Package config resolves default settings for srclist from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvExtension  = "SRCLIST_EXT"
	EnvVariable   = "SRCLIST_VAR"
	EnvSort       = "SRCLIST_SORT"
	EnvIgnoreFile = "SRCLIST_IGNORE_FILE"
	EnvDebug      = "SRCLIST_DEBUG"
)

// Config holds defaults for the command-line flags. Flags set explicitly win.
type Config struct {
	Extension  string
	Variable   string
	Sort       bool
	IgnoreFile string
	Debug      bool
}

// Load reads an optional .env file from the working directory and then the
// SRCLIST_* environment variables. Existing environment values are not
// overridden by .env. A missing .env is not an error; a malformed one is
// returned alongside the resolved Config so the caller can log it.
func Load() (Config, error) {
	var dotenvErr error
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		dotenvErr = fmt.Errorf("failed to load .env: %w", err)
	}

	return Config{
		Extension:  firstNonEmpty(strings.TrimSpace(os.Getenv(EnvExtension)), ".c"),
		Variable:   firstNonEmpty(strings.TrimSpace(os.Getenv(EnvVariable)), "ssl_src"),
		Sort:       envBool(EnvSort),
		IgnoreFile: strings.TrimSpace(os.Getenv(EnvIgnoreFile)),
		Debug:      envBool(EnvDebug),
	}, dotenvErr
}

func envBool(key string) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
