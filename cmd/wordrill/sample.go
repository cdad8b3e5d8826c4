package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/conorfennell/wordrill/internal/console"
	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/conorfennell/wordrill/internal/sampler"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [file]",
	Short: "Draw one round and print it",
	Long: `Draw one round, count it as shown, save the file and print the round.

Every category gets --default-quota entries unless set with --quota:

  wordrill sample words.csv --quota animals=3 --quota verbs=0 --review 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringArray("quota", nil, "category=count, repeatable")
}

func runSample(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd, args)
	if err != nil {
		return err
	}
	if a.path == "" {
		return fmt.Errorf("%w: give a file argument or --file", domain.ErrNoDataLoaded)
	}

	p := console.NewPrinter(os.Stdout)
	if _, err := a.session.Open(a.path); err != nil {
		if !errors.Is(err, domain.ErrPersist) {
			return err
		}
		p.Error(err)
	}

	raw, _ := cmd.Flags().GetStringArray("quota")
	quotas, err := buildQuotas(a.session.Quotas(a.cfg.Drill.DefaultQuota), raw)
	if err != nil {
		return err
	}
	for _, q := range quotas.unknown {
		a.log.Warn("Quota for unknown category", "category", q)
	}
	for _, w := range quotas.invalid {
		a.log.Warn("Invalid quota, using 0", "error", w)
	}

	rows, err := a.session.Show(sampler.Request{
		Quotas:   quotas.list,
		Review:   a.cfg.Drill.Review,
		Mode:     a.mode(),
		Fallback: a.cfg.Drill.Fallback,
	})
	if err != nil {
		return err
	}
	p.Selection(rows)
	return nil
}

type quotaSet struct {
	list    []sampler.Quota
	unknown []string
	invalid []error
}

// buildQuotas applies "category=count" overrides to the default quotas.
// Overrides for categories that are not loaded are kept, after the known
// ones, and draw nothing.
func buildQuotas(defaults []sampler.Quota, raw []string) (quotaSet, error) {
	set := quotaSet{list: append([]sampler.Quota(nil), defaults...)}
	index := make(map[string]int, len(defaults))
	for i, q := range defaults {
		index[q.Category] = i
	}

	for _, r := range raw {
		q, err := sampler.ParseQuota(r)
		if err != nil {
			if !errors.Is(err, domain.ErrInvalidNumericInput) {
				return set, err
			}
			set.invalid = append(set.invalid, err)
		}
		if i, ok := index[q.Category]; ok {
			set.list[i].Count = q.Count
			continue
		}
		index[q.Category] = len(set.list)
		set.list = append(set.list, q)
		set.unknown = append(set.unknown, q.Category)
	}
	return set, nil
}
