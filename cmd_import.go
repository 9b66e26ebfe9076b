package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yumyai/atacrna/logger"
	"github.com/yumyai/atacrna/pkg/db"
	"github.com/yumyai/atacrna/pkg/model"
	"go.uber.org/zap"
)

func newImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load CSV tables into the data directory",
		Long: `Load reference tables into the data directory.

  genes       gene_name,start,end,strand        -> db/atacrna.db
  peaks       gene_name,sample_id,start,end     -> db/atacrna.db
  expression  gene_name,sample_id,rna,atac,color -> expression.parquet`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "genes <csv>",
			Short: "Append exon rows to the genes table",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.importGenes(cmd, args[0])
			},
		},
		&cobra.Command{
			Use:   "peaks <csv>",
			Short: "Append ATAC peaks to the peaks table",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.importPeaks(cmd, args[0])
			},
		},
		&cobra.Command{
			Use:   "expression <csv>",
			Short: "Replace the expression matrix with the rows of a CSV",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.importExpression(cmd, args[0])
			},
		},
	)
	return cmd
}

func (a *app) importGenes(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := db.ReadGenesCSV(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	store, err := db.Open(db.DatabasePath(a.cfg.DataDir))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InsertGenes(cmd.Context(), records); err != nil {
		return err
	}
	logger.Info("Imported exon rows", zap.String("file", path), zap.Int("rows", len(records)))
	cmd.Printf("Imported %d exon rows from %s\n", len(records), path)
	return nil
}

func (a *app) importPeaks(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	peaks, err := db.ReadPeaksCSV(f, model.Timepoints)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	store, err := db.Open(db.DatabasePath(a.cfg.DataDir))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InsertPeaks(cmd.Context(), peaks); err != nil {
		return err
	}
	logger.Info("Imported peaks", zap.String("file", path), zap.Int("rows", len(peaks)))
	cmd.Printf("Imported %d peaks from %s\n", len(peaks), path)
	return nil
}

func (a *app) importExpression(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := db.ReadExpressionCSV(f, model.CellTypePalette)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
		return err
	}
	out := db.ExpressionPath(a.cfg.DataDir)
	if err := db.WriteExpression(out, rows); err != nil {
		return err
	}
	logger.Info("Wrote expression matrix", zap.String("file", out), zap.Int("rows", len(rows)))
	cmd.Printf("Wrote %d metacell rows to %s\n", len(rows), out)
	return nil
}
