package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/topgear/pkg/models"
	"github.com/golangdaddy/topgear/pkg/storage"
	"github.com/golangdaddy/topgear/pkg/ui"
)

func newResultsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "results",
		Short: "List stored race results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := storage.Open(cfg.ResultsDir)
			if err != nil {
				return err
			}
			defer db.Close()

			results, err := storage.NewStorage(models.ResultEntity, db).ListResults(limit, nil)
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results, 0 lists all")
	return cmd
}

func printResults(out io.Writer, results []*models.RaceResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(out, "no races stored yet")
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCAR\tPOS\tLAPS\tTOTAL\tBEST LAP\tLAP TIMES")
	for _, r := range results {
		laps := lo.Map(r.LapTimes, func(d time.Duration, _ int) string { return ui.FormatLapTime(d.Seconds()) })
		fmt.Fprintf(w, "%s\t%s\t%s/%d\t%d\t%s\t%s\t%s\n",
			r.FinishedAt.Local().Format("2006-01-02 15:04"),
			r.Car,
			ui.Ordinal(r.Placement), r.FieldSize,
			r.Laps,
			ui.FormatLapTime(r.TotalTime.Seconds()),
			ui.FormatLapTime(r.BestLap.Seconds()),
			strings.Join(laps, " "))
	}
	return w.Flush()
}
