// Package config loads settings for the i18n-report commands.
//
// Settings are applied in order: built-in defaults, the TOML config file,
// a .env file next to it, environment variables, and finally command-line
// flags (applied by the caller before Validate).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/AllesOderNicht/door-web/internal/languages"
	"github.com/AllesOderNicht/door-web/internal/locale"
	"github.com/AllesOderNicht/door-web/internal/logging"
)

// DefaultFile is looked up in the repository root when no config path is
// given.
const DefaultFile = ".i18n-report.toml"

// DefaultLocalesDir holds one <lang>.json file per supported language.
const DefaultLocalesDir = "src/i18n/locales"

// Environment variables.
const (
	EnvConfigFile   = "I18N_REPORT_CONFIG"
	EnvLocalesDir   = "I18N_LOCALES_DIR"
	EnvBaseLanguage = "I18N_BASE_LANGUAGE"
	EnvFormat       = "I18N_FORMAT"
	EnvLogLevel     = "I18N_LOG_LEVEL"
	EnvLogFormat    = "I18N_LOG_FORMAT"
	EnvTables       = "I18N_TABLES"
)

// Config holds the settings shared by all subcommands.
type Config struct {
	// LocalesDir is relative to the repository root unless absolute.
	LocalesDir   string `toml:"locales_dir"`
	BaseLanguage string `toml:"base_language"`
	// Format of the locale files: "json" or "yaml".
	Format    string `toml:"format"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	// Tables are extra translation-table files overlaid on the built-in one.
	Tables []string `toml:"tables"`
	// Ignore holds glob patterns of key paths skipped by check.
	Ignore []string `toml:"ignore"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LocalesDir:   DefaultLocalesDir,
		BaseLanguage: languages.Base,
		Format:       string(locale.FormatJSON),
		LogLevel:     zerolog.LevelInfoValue,
		LogFormat:    logging.FormatConsole,
	}
}

// Load returns the defaults overlaid with the config file, the .env file in
// root and the environment. path may be empty, in which case
// I18N_REPORT_CONFIG or root/.i18n-report.toml is used; only an explicitly
// named file must exist.
func Load(root, path string) (Config, error) {
	cfg := Default()

	if err := loadDotEnv(filepath.Join(root, ".env")); err != nil {
		return cfg, err
	}

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigFile)
		explicit = path != ""
	}
	if !explicit {
		path = filepath.Join(root, DefaultFile)
	}
	if err := cfg.readTOML(path, explicit); err != nil {
		return cfg, err
	}

	cfg.readEnv()
	return cfg, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: loading %s: %w", path, err)
	}
	return nil
}

func (c *Config) readTOML(path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) readEnv() {
	if v := os.Getenv(EnvLocalesDir); v != "" {
		c.LocalesDir = v
	}
	if v := os.Getenv(EnvBaseLanguage); v != "" {
		c.BaseLanguage = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv(EnvTables); v != "" {
		c.Tables = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.Tables = append(c.Tables, p)
			}
		}
	}
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LocalesDir) == "" {
		return errors.New("config: locales_dir must not be empty")
	}
	if !languages.IsSupported(c.BaseLanguage) {
		return fmt.Errorf("config: base_language %q is not one of %s", c.BaseLanguage, strings.Join(languages.Codes(), ", "))
	}
	if _, err := locale.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: format: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	if c.LogFormat != logging.FormatConsole && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("config: log_format must be %q or %q, got %q", logging.FormatConsole, logging.FormatJSON, c.LogFormat)
	}
	return nil
}

// LocaleFormat returns the parsed locale file format. Call Validate first.
func (c *Config) LocaleFormat() locale.Format {
	f, _ := locale.ParseFormat(c.Format)
	return f
}

// LocalesPath resolves LocalesDir against root.
func (c *Config) LocalesPath(root string) string {
	if filepath.IsAbs(c.LocalesDir) {
		return c.LocalesDir
	}
	return filepath.Join(root, c.LocalesDir)
}

// TablePaths resolves Tables against root.
func (c *Config) TablePaths(root string) []string {
	out := make([]string, len(c.Tables))
	for i, p := range c.Tables {
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		out[i] = p
	}
	return out
}
