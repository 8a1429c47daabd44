// Package config loads addressbook settings from JSONC files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
	"go.uber.org/zap/zapcore"
)

// Config errors.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrPromptEmpty        = errors.New("prompt cannot be empty")
	ErrInvalidLogLevel    = errors.New("invalid log_level")
)

// FileName is the project config file looked up in the work directory.
const FileName = ".addressbook.json"

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Prompt      string   `json:"prompt"`
	HistoryFile string   `json:"history_file,omitempty"`
	LogLevel    string   `json:"log_level"`
	Preload     []string `json:"preload,omitempty"`
	SortOnLoad  *bool    `json:"sort_on_load,omitempty"`

	// Resolved (computed, not serialized)
	EffectiveCwd string   `json:"-"`
	PreloadAbs   []string `json:"-"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Prompt:   "addressbook> ",
		LogLevel: "warn",
	}
}

// SortsOnLoad reports whether the book is sorted after every file load.
func (c Config) SortsOnLoad() bool {
	return c.SortOnLoad != nil && *c.SortOnLoad
}

// Level returns the parsed log level. LoadConfig has validated it.
func (c Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}

	return level
}

// Input holds the inputs for Load.
type Input struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Verbose         bool              // -v/--verbose forces log_level=debug
	ExtraPreload    []string          // --load flag values, appended to preload
	Env             map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/addressbook/config.json or $XDG_CONFIG_HOME/addressbook/config.json)
// 3. Project config file at default location (.addressbook.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty)
// 5. CLI flags.
//
// Preload paths in the returned Config are resolved against the work directory.
func Load(input Input) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := Default()

	globalCfg, globalPath, err := loadGlobal(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = merge(cfg, globalCfg)

	projectCfg, projectPath, err := loadProject(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = merge(cfg, projectCfg)

	if input.Verbose {
		cfg.LogLevel = "debug"
	}

	cfg.Preload = append(cfg.Preload, input.ExtraPreload...)

	err = validate(cfg)
	if err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = workDir

	for _, p := range cfg.Preload {
		if !filepath.IsAbs(p) {
			p = filepath.Join(workDir, p)
		}

		cfg.PreloadAbs = append(cfg.PreloadAbs, p)
	}

	if cfg.HistoryFile != "" && !filepath.IsAbs(cfg.HistoryFile) {
		cfg.HistoryFile = filepath.Join(workDir, cfg.HistoryFile)
	}

	return cfg, nil
}

// globalPath returns $XDG_CONFIG_HOME/addressbook/config.json if set,
// otherwise ~/.config/addressbook/config.json, or "" without a home.
func globalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "addressbook", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "addressbook", "config.json")
	}

	return ""
}

func loadGlobal(env map[string]string) (Config, string, error) {
	path := globalPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadFile(path, false)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadProject loads .addressbook.json or the explicit config file.
func loadProject(workDir, configPath string) (Config, string, error) {
	cfgFile := filepath.Join(workDir, FileName)
	mustExist := false

	if configPath != "" {
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	}

	cfg, loaded, err := loadFile(cfgFile, mustExist)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, cfgFile, nil
}

// loadFile loads a config file. If mustExist is false, missing files return zero config.
func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	// An explicit "prompt": "" is an error, not "keep the default".
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	if val, exists := raw["prompt"]; exists {
		if str, ok := val.(string); ok && str == "" {
			return Config{}, ErrPromptEmpty
		}
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.Prompt != "" {
		base.Prompt = overlay.Prompt
	}

	if overlay.HistoryFile != "" {
		base.HistoryFile = overlay.HistoryFile
	}

	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}

	if overlay.SortOnLoad != nil {
		base.SortOnLoad = overlay.SortOnLoad
	}

	base.Preload = append(base.Preload, overlay.Preload...)

	return base
}

func validate(cfg Config) error {
	if cfg.Prompt == "" {
		return ErrPromptEmpty
	}

	_, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}
