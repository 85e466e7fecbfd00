package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AllesOderNicht/door-web/internal/config"
	"github.com/AllesOderNicht/door-web/internal/diff"
	"github.com/AllesOderNicht/door-web/internal/languages"
	"github.com/AllesOderNicht/door-web/internal/locale"
	"github.com/AllesOderNicht/door-web/internal/logging"
)

// app is the state shared by all subcommands, filled in by setup once
// flags are parsed.
type app struct {
	root   string
	cfg    config.Config
	log    zerolog.Logger
	out    io.Writer
	format string

	flags struct {
		config     string
		localesDir string
		base       string
		logLevel   string
	}
}

func newApp() *app {
	return &app{
		cfg:    config.Default(),
		log:    zerolog.Nop(),
		out:    os.Stdout,
		format: formatText,
	}
}

// setup resolves the repository root, loads the configuration and
// applies command-line overrides.
func (a *app) setup(cmd *cobra.Command) error {
	if a.format != formatText && a.format != formatJSON {
		return fmt.Errorf("--format must be %q or %q, got %q", formatText, formatJSON, a.format)
	}

	root, err := repoRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Load(root, a.flags.config)
	if err != nil {
		return err
	}
	if a.flags.localesDir != "" {
		cfg.LocalesDir = a.flags.localesDir
	}
	if a.flags.base != "" {
		cfg.BaseLanguage = a.flags.base
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.root = root
	a.cfg = cfg
	a.log = log
	a.out = cmd.OutOrStdout()
	a.log.Debug().Str("root", root).Str("locales", a.localesDir()).Str("base", a.base()).Msg("configuration loaded")
	return nil
}

// repoRoot returns the repository root by walking up from the current
// directory looking for package.json.
func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find repository root (no package.json found)")
		}
		dir = parent
	}
}

func (a *app) base() string { return a.cfg.BaseLanguage }

func (a *app) localesDir() string { return a.cfg.LocalesPath(a.root) }

// localePath returns the file holding lang's translations.
func (a *app) localePath(lang string) string {
	return locale.FilePath(a.localesDir(), lang, a.cfg.LocaleFormat())
}

// rel shortens path for messages.
func (a *app) rel(path string) string {
	if r, err := filepath.Rel(a.root, path); err == nil {
		return r
	}
	return path
}

func (a *app) loadLocale(lang string) (*locale.Node, error) {
	return locale.Load(a.localePath(lang))
}

// targets returns every supported language except the base, in display
// order.
func (a *app) targets() []string {
	var out []string
	for _, code := range languages.Codes() {
		if code != a.base() {
			out = append(out, code)
		}
	}
	return out
}

// requireLanguage rejects codes outside the supported list.
func requireLanguage(code string) error {
	if !languages.IsSupported(code) {
		return fmt.Errorf("unsupported language %q (supported: %v)", code, languages.Codes())
	}
	return nil
}

// loadAll reads every supported locale in display order, stopping at the
// first file that is missing or cannot be parsed.
func (a *app) loadAll() ([]diff.Locale, error) {
	codes := languages.Codes()
	out := make([]diff.Locale, 0, len(codes))
	for _, code := range codes {
		tree, err := a.loadLocale(code)
		if err != nil {
			return nil, err
		}
		out = append(out, diff.Locale{Lang: code, Tree: tree})
	}
	return out, nil
}

// loadPair reads the base locale and the locale of lang.
func (a *app) loadPair(lang string) (base, target *locale.Node, err error) {
	if err := requireLanguage(lang); err != nil {
		return nil, nil, err
	}
	if base, err = a.loadLocale(a.base()); err != nil {
		return nil, nil, err
	}
	if target, err = a.loadLocale(lang); err != nil {
		return nil, nil, err
	}
	return base, target, nil
}
