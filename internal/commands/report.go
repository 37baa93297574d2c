package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallied-dev/tallied/internal/categories"
	"github.com/tallied-dev/tallied/internal/config"
	"github.com/tallied-dev/tallied/internal/model"
	"github.com/tallied-dev/tallied/internal/normalize"
	"github.com/tallied-dev/tallied/internal/report"
	"github.com/tallied-dev/tallied/internal/snapshot"
)

// reportContext is everything a report subcommand needs: the normalized
// snapshot, the category catalog, and the rendering options.
type reportContext struct {
	txns    []model.Transaction
	catalog *categories.Service
	cfg     *config.Config
	asJSON  bool
}

type contextLoader func(cmd *cobra.Command) (*reportContext, error)

func newReportCommand() *cobra.Command {
	var input string
	var configPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render reports over a transaction snapshot",
	}

	cmd.PersistentFlags().StringVarP(&input, "input", "i", "", "snapshot file (.json or .csv)")
	_ = cmd.MarkPersistentFlagRequired("input")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to tallied.yaml")
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")

	load := func(c *cobra.Command) (*reportContext, error) {
		rc, err := loadReportContext(c, input, configPath)
		if err != nil {
			return nil, err
		}
		rc.asJSON = asJSON
		return rc, nil
	}

	cmd.AddCommand(newSummaryCommand(load))
	cmd.AddCommand(newDailyCommand(load))
	cmd.AddCommand(newCategoriesCommand(load))
	cmd.AddCommand(newOverviewCommand(load))
	cmd.AddCommand(newRecentCommand(load))

	return cmd
}

// loadReportContext parses and normalizes the snapshot. Records that
// fail normalization are reported on stderr and skipped so the report
// still renders the surviving rows.
func loadReportContext(cmd *cobra.Command, input, configPath string) (*reportContext, error) {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	parser := snapshot.DefaultRegistry().Get(snapshot.FormatForPath(input))
	raws, err := parser.Parse(f)
	if err != nil {
		return nil, err
	}

	txns, recErrs := normalize.All(raws, normalize.Aggregate)
	for _, re := range recErrs {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipping %v\n", re)
	}

	catalog := cfg.Catalog()
	if len(catalog) == 0 {
		catalog = categories.DefaultCatalog()
	}

	return &reportContext{
		txns:    txns,
		catalog: categories.NewService(catalog),
		cfg:     cfg,
	}, nil
}

// resolveConfig loads the named config, or tallied.yaml in the working
// directory, or falls back to defaults when neither exists.
func resolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, err := config.Load("tallied.yaml")
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSummaryCommand(load contextLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Totals, balance, and current-month subtotals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := load(cmd)
			if err != nil {
				return err
			}

			s := report.Summarize(rc.txns, model.DateOf(time.Now()))
			if rc.asJSON {
				return writeJSON(cmd, s)
			}

			w := newTable(cmd)
			fmt.Fprintf(w, "Total Balance\t%s\n", s.TotalBalance.StringFixed(2))
			fmt.Fprintf(w, "Total Income\t%s\n", s.TotalIncome.StringFixed(2))
			fmt.Fprintf(w, "Total Expenses\t%s\n", s.TotalExpense.StringFixed(2))
			fmt.Fprintf(w, "This Month Income\t%s\n", s.CurrentMonthIncome.StringFixed(2))
			fmt.Fprintf(w, "This Month Expenses\t%s\n", s.CurrentMonthExpense.StringFixed(2))
			fmt.Fprintf(w, "Entries\t%d\n", s.EntryCount)
			return w.Flush()
		},
	}
}

func newDailyCommand(load contextLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Daily totals for trend charts, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := load(cmd)
			if err != nil {
				return err
			}

			points := report.AggregateByDay(rc.txns)
			if rc.asJSON {
				return writeJSON(cmd, points)
			}

			w := newTable(cmd)
			fmt.Fprintln(w, "DATE\tTOTAL\tCOUNT")
			for _, p := range points {
				fmt.Fprintf(w, "%s\t%s\t%d\n", p.FullLabel, p.TotalAmount.StringFixed(2), p.TransactionCount)
			}
			return w.Flush()
		},
	}
}

func newCategoriesCommand(load contextLoader) *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Spending and income broken down by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := load(cmd)
			if err != nil {
				return err
			}

			buckets := report.AggregateByCategory(rc.txns, rc.catalog)
			if sorted || rc.cfg.Report.SortCategories {
				report.SortByMagnitude(buckets)
			}
			if rc.asJSON {
				return writeJSON(cmd, buckets)
			}

			w := newTable(cmd)
			fmt.Fprintln(w, "CATEGORY\tAMOUNT")
			for _, b := range buckets {
				fmt.Fprintf(w, "%s\t%s\n", b.BucketName, b.ActualAmount.StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&sorted, "sort", false, "sort buckets by amount, largest first")
	return cmd
}

func newOverviewCommand(load contextLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Balance / income / expenses overview buckets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := load(cmd)
			if err != nil {
				return err
			}

			s := report.Summarize(rc.txns, model.DateOf(time.Now()))
			buckets := report.OverviewBuckets(s.TotalBalance, s.TotalIncome, s.TotalExpense)
			if rc.asJSON {
				return writeJSON(cmd, buckets)
			}

			w := newTable(cmd)
			fmt.Fprintln(w, "BUCKET\tAMOUNT")
			for _, b := range buckets {
				fmt.Fprintf(w, "%s\t%s\n", b.BucketName, b.ActualAmount.StringFixed(2))
			}
			return w.Flush()
		},
	}
}

func newRecentCommand(load contextLoader) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Most recent transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := load(cmd)
			if err != nil {
				return err
			}

			n := limit
			if n < 0 {
				n = rc.cfg.Report.RecentLimit
			}

			recent := report.MostRecent(rc.txns, n)
			if rc.asJSON {
				return writeJSON(cmd, recent)
			}

			w := newTable(cmd)
			fmt.Fprintln(w, "DATE\tNAME\tKIND\tAMOUNT")
			for _, tx := range recent {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tx.Date, tx.Name, tx.Kind, tx.Amount.StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", -1, "number of transactions (default from config)")
	return cmd
}

func newTable(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
