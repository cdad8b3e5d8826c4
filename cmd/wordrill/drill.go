package main

import (
	"os"

	"github.com/conorfennell/wordrill/internal/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var drillCmd = &cobra.Command{
	Use:   "drill [file]",
	Short: "Start an interactive drill session",
	Long: `Start an interactive drill session, optionally opening a file.

Type help at the prompt for the list of commands.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDrill,
}

func runDrill(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd, args)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	c := console.New(a.session, os.Stdin, os.Stdout, console.Settings{
		DefaultQuota: a.cfg.Drill.DefaultQuota,
		Review:       a.cfg.Drill.Review,
		Fallback:     a.cfg.Drill.Fallback,
		Mode:         a.mode(),
	}, interactive, a.log)

	if a.path != "" {
		c.Exec("open " + a.path)
	}
	if interactive {
		c.Exec("help")
	}
	return c.Run()
}
