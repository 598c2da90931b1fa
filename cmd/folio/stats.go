package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/analytics"
)

var flagDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print an analytics summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.AnalyticsEnabled {
			return errors.New("analytics is disabled in the configuration")
		}
		if flagDays < 1 {
			return fmt.Errorf("--days must be at least 1, got %d", flagDays)
		}
		store, err := analytics.NewStore(cfg.AnalyticsDatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		to := time.Now()
		stats, err := store.GetStats(cmd.Context(), to.AddDate(0, 0, -flagDays), to)
		if err != nil {
			return err
		}
		return printStats(cmd.OutOrStdout(), stats)
	},
}

func init() {
	statsCmd.Flags().IntVar(&flagDays, "days", 30, "number of days to summarize")
}

func printStats(out io.Writer, s *analytics.Stats) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Period\t%s\n", s.Period)
	fmt.Fprintf(w, "Unique visitors\t%d\n", s.UniqueVisitors)
	fmt.Fprintf(w, "Page views\t%d\n", s.TotalViews)
	fmt.Fprintf(w, "Bot visits\t%d\n", s.BotVisits)

	groups := []struct {
		title string
		rows  []analytics.DimensionStat
	}{
		{"Sections", s.TopSections},
		{"Browsers", s.BrowserStats},
		{"Devices", s.DeviceStats},
		{"Themes", s.ThemeStats},
		{"Referrers", s.ReferrerStats},
	}
	for _, grp := range groups {
		if len(grp.rows) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\t\n", grp.title)
		for _, r := range grp.rows {
			fmt.Fprintf(w, "  %s\t%d\n", r.Name, r.Count)
		}
	}
	if len(s.DailyViews) > 0 {
		fmt.Fprintf(w, "\nDaily views\t\n")
		for _, d := range s.DailyViews {
			fmt.Fprintf(w, "  %s\t%d\n", d.Date, d.Views)
		}
	}
	return w.Flush()
}
