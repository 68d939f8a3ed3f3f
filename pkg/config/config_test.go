package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvExtension, EnvVariable, EnvSort, EnvIgnoreFile, EnvDebug} {
		// Register restoration, then unset so .env files can supply values.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Extension: ".c", Variable: "ssl_src"}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv(EnvExtension, " .h ")
	t.Setenv(EnvVariable, "crypto_hdrs")
	t.Setenv(EnvSort, "true")
	t.Setenv(EnvIgnoreFile, "/etc/srclist.ignore")
	t.Setenv(EnvDebug, "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Extension:  ".h",
		Variable:   "crypto_hdrs",
		Sort:       true,
		IgnoreFile: "/etc/srclist.ignore",
		Debug:      true,
	}, cfg)
}

func TestLoad_InvalidBoolIsFalse(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv(EnvSort, "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Sort)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SRCLIST_VAR=from_dotenv\nSRCLIST_EXT=.S\n"), 0o644))
	chdir(t, dir)
	t.Setenv(EnvExtension, ".asm")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".asm", cfg.Extension)
	assert.Equal(t, "from_dotenv", cfg.Variable)
}

func TestLoad_MalformedDotEnvIsReported(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SRCLIST_VAR=\"unterminated\n"), 0o644))
	chdir(t, dir)
	t.Setenv(EnvExtension, ".h")

	cfg, err := Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to load .env")
	assert.Equal(t, ".h", cfg.Extension, "environment is still resolved")
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
