// Package config loads wordrill settings. Sources are layered, later ones
// winning: flag defaults, an optional YAML file, WORDRILL_* environment
// variables, then flags given on the command line.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nesting levels: WORDRILL_DRILL__DEFAULT_QUOTA sets drill.default_quota.
const EnvPrefix = "WORDRILL_"

type Config struct {
	File   string       `koanf:"file"`
	Source SourceConfig `koanf:"source"`
	Drill  DrillConfig  `koanf:"drill"`
	Log    LogConfig    `koanf:"log"`
}

type SourceConfig struct {
	GitURL   string `koanf:"git_url"`
	ReposDir string `koanf:"repos_dir" validate:"required"`
}

type DrillConfig struct {
	DefaultQuota int    `koanf:"default_quota" validate:"min=0"`
	Review       int    `koanf:"review" validate:"min=0"`
	Fallback     int    `koanf:"fallback" validate:"min=0"`
	Mode         string `koanf:"mode" validate:"oneof=source target both"`
	Seed         uint64 `koanf:"seed"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

// flagKeys maps command-line flags to config keys. Flags not listed here
// are not configuration.
var flagKeys = map[string]string{
	"file":          "file",
	"git-url":       "source.git_url",
	"repos-dir":     "source.repos_dir",
	"default-quota": "drill.default_quota",
	"review":        "drill.review",
	"count":         "drill.fallback",
	"mode":          "drill.mode",
	"seed":          "drill.seed",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

// RegisterFlags defines the configuration flags and their defaults on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file (or $"+EnvPrefix+"CONFIG)")
	fs.String("file", "", "vocabulary file to open (.csv, .tsv, .xlsx, .db)")
	fs.String("git-url", "", "git repository holding the vocabulary file")
	fs.String("repos-dir", "repos", "directory for git checkouts")
	fs.Int("default-quota", 1, "entries per category unless overridden")
	fs.Int("review", 0, "entries drawn from those marked for review")
	fs.Int("count", 5, "entries drawn when no quota is set")
	fs.String("mode", "source", "what to display: source, target or both")
	fs.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "text", "text or json")
}

// Load builds the configuration from fs (already parsed), the config file
// it names, and the environment.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	path, _ := fs.GetString("config")
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to read flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Drill.Mode = strings.ToLower(cfg.Drill.Mode)

	if err := ValidateStruct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Logger builds the process logger.
func (c LogConfig) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
