package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/yumyai/atacrna/pkg/db"
	"github.com/yumyai/atacrna/pkg/model"
)

var (
	positiveColor  = color.New(color.FgGreen, color.Bold)
	negativeColor  = color.New(color.FgRed, color.Bold)
	undefinedColor = color.New(color.FgYellow)
)

// strongCorrelation is the |r| above which a value is highlighted.
const strongCorrelation = 0.5

func newCorrelationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "correlations <gene>",
		Short: "Print the per-timepoint ATAC/RNA correlation of a gene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.RequireData(); err != nil {
				return err
			}
			data, err := db.LoadDataset(cmd.Context(), a.cfg.DataDir)
			if err != nil {
				return err
			}
			defer data.Close()

			grid, err := data.Grid(args[0], model.Timepoints, model.CellTypePalette)
			if err != nil {
				return err
			}
			return printCorrelationTable(cmd.OutOrStdout(), grid)
		},
	}
}

func colorCorrelation(r float64) string {
	text := model.FormatCorrelation(r)
	switch {
	case model.IsUndefined(r):
		return undefinedColor.Sprint(text)
	case r >= strongCorrelation:
		return positiveColor.Sprint(text)
	case r <= -strongCorrelation:
		return negativeColor.Sprint(text)
	default:
		return text
	}
}

// printCorrelationTable writes one row per timepoint with the shared axis
// maxima as a footer line.
func printCorrelationTable(w io.Writer, grid *model.Grid) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Sample", "Timepoint", "Metacells", "Correlation"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range grid.Panels {
		data = append(data, []string{
			p.Timepoint.SampleID,
			p.Timepoint.Label,
			strconv.Itoa(len(p.Observations)),
			colorCorrelation(p.Correlation),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s: max ATAC %.2f, max RNA %.2f\n", grid.Gene, grid.XMax, grid.YMax)
	return err
}
