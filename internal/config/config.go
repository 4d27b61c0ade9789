package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigFile = "QUIZ_CONFIG"
	EnvDBPath     = "QUIZ_DB_PATH"
	EnvLogLevel   = "QUIZ_LOG_LEVEL"
	EnvLogFormat  = "QUIZ_LOG_FORMAT"

	DefaultDBPath    = "quiz.db"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Overrides are values given explicitly on the command line; empty fields
// are not set.
type Overrides struct {
	ConfigFile string
	DBPath     string
	LogLevel   string
	LogFormat  string
}

// LoadEnvFile loads a .env file into the process environment without
// overriding variables that are already set. A missing file is ignored.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Load resolves the configuration. Precedence is overrides, then
// environment, then the YAML file, then defaults.
func Load(overrides Overrides) (*Config, error) {
	cfg := &Config{}

	configFile := firstNonEmpty(overrides.ConfigFile, os.Getenv(EnvConfigFile))
	if configFile != "" {
		fileCfg, err := LoadFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	cfg.Database.Path = firstNonEmpty(overrides.DBPath, os.Getenv(EnvDBPath), cfg.Database.Path, DefaultDBPath)
	cfg.Log.Level = firstNonEmpty(overrides.LogLevel, os.Getenv(EnvLogLevel), cfg.Log.Level, DefaultLogLevel)
	cfg.Log.Format = strings.ToLower(firstNonEmpty(overrides.LogFormat, os.Getenv(EnvLogFormat), cfg.Log.Format, DefaultLogFormat))

	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return nil, fmt.Errorf("unsupported log format %q (want text or json)", cfg.Log.Format)
	}

	return cfg, nil
}

func LoadFile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := &Config{}
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", filename, err)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
