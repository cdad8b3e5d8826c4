package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/conorfennell/wordrill/internal/config"
	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/conorfennell/wordrill/internal/drill"
	"github.com/conorfennell/wordrill/internal/sampler"
	"github.com/conorfennell/wordrill/internal/source"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordrill",
	Short: "Drill vocabulary from a spreadsheet",
	Long: `wordrill draws rounds of word pairs from a vocabulary sheet.

The sheet needs the columns Deutsch (or source_text), English (or
target_text) and Category (or category). TimesShown and Status columns
are added on first load. Rounds draw entries marked for review first,
then a quota per category; with no quota at all a flat count is drawn.
Entries marked mastered are never drawn.`,
	SilenceUsage: true,
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(drillCmd, sampleCmd, categoriesCmd)
}

// app is what every command needs once flags are parsed.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	session *drill.Session
	path    string
}

// setup loads the configuration, installs the logger and resolves the
// vocabulary file. A positional argument overrides the configured file.
func setup(cmd *cobra.Command, args []string) (*app, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	log := cfg.Log.Logger(os.Stderr)
	slog.SetDefault(log)

	file := cfg.File
	if len(args) > 0 {
		file = args[0]
	}

	var path string
	if file != "" || cfg.Source.GitURL != "" {
		path, err = source.Resolve(cfg.Source.GitURL, cfg.Source.ReposDir, file)
		if err != nil {
			return nil, err
		}
	}

	seed := cfg.Drill.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug("Configuration loaded", "file", path, "seed", seed, "mode", cfg.Drill.Mode)

	return &app{
		cfg:     cfg,
		log:     log,
		session: drill.NewSession(sampler.New(seed), log),
		path:    path,
	}, nil
}

func (a *app) mode() domain.DisplayMode {
	mode, _ := domain.ParseDisplayMode(a.cfg.Drill.Mode)
	return mode
}
