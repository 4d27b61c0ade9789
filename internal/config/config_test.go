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
	for _, key := range []string{EnvConfigFile, EnvDBPath, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, DefaultDBPath, cfg.Database.Path)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	file := writeFile(t, "quiz.yaml", "database:\n  path: from-file.db\nlog:\n  level: info\n  format: json\n")

	cfg, err := Load(Overrides{ConfigFile: file})
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	t.Setenv(EnvDBPath, "from-env.db")
	cfg, err = Load(Overrides{ConfigFile: file})
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database.Path)

	cfg, err = Load(Overrides{ConfigFile: file, DBPath: "from-flag.db", LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFileFromEnv(t *testing.T) {
	clearEnv(t)
	file := writeFile(t, "quiz.yaml", "database:\n  path: env-file.db\n")
	t.Setenv(EnvConfigFile, file)

	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "env-file.db", cfg.Database.Path)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	clearEnv(t)

	_, err := Load(Overrides{LogFormat: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(Overrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	// godotenv never overrides a variable that is set, even to "".
	clearEnv(t)
	os.Unsetenv(EnvDBPath)

	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))

	envFile := writeFile(t, ".env", EnvDBPath+"=dotenv.db\n")
	require.NoError(t, LoadEnvFile(envFile))
	assert.Equal(t, "dotenv.db", os.Getenv(EnvDBPath))
}
