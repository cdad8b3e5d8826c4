package main

import (
	"fmt"
	"os"

	"github.com/conorfennell/wordrill/internal/console"
	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/conorfennell/wordrill/internal/store"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [file]",
	Short: "List categories with entry counts by status",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd, args)
		if err != nil {
			return err
		}
		if a.path == "" {
			return fmt.Errorf("%w: give a file argument or --file", domain.ErrNoDataLoaded)
		}

		// Read only: unlike drill and sample this does not write the file back.
		st, err := store.Load(a.path)
		if err != nil {
			return err
		}
		p := console.NewPrinter(os.Stdout)
		p.Info("%s: %d entries", a.path, st.Len())
		p.Summary(st.Summary())
		return nil
	},
}
