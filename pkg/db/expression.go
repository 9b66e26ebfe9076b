package db

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/yumyai/atacrna/pkg/model"
)

// ExpressionRow is one metacell of one sample for one gene. Rows of the same
// (gene, sample) keep their file order.
type ExpressionRow struct {
	GeneName string  `parquet:"gene_name,snappy"`
	SampleID string  `parquet:"sample_id,snappy,dict"`
	RNA      float64 `parquet:"rna,snappy"`
	ATAC     float64 `parquet:"atac,snappy"`
	Color    string  `parquet:"color,snappy,dict"`
}

// LoadExpression reads the expression matrix into gene -> sample -> observations.
func LoadExpression(path string) (model.ExpressionSet, error) {
	rows, err := parquet.ReadFile[ExpressionRow](path)
	if err != nil {
		return nil, fmt.Errorf("read expression parquet %s: %w", path, err)
	}
	return GroupExpression(rows), nil
}

// GroupExpression folds flat rows into an ExpressionSet, preserving row order
// within each (gene, sample).
func GroupExpression(rows []ExpressionRow) model.ExpressionSet {
	set := make(model.ExpressionSet)
	for _, r := range rows {
		gene, ok := set[r.GeneName]
		if !ok {
			gene = make(model.GeneExpression)
			set[r.GeneName] = gene
		}
		gene[r.SampleID] = append(gene[r.SampleID], model.Observation{
			Expression:    r.RNA,
			Accessibility: r.ATAC,
			Color:         r.Color,
		})
	}
	return set
}

// WriteExpression writes rows to path. The old matrix stays in place until
// the new one is complete.
func WriteExpression(path string, rows []ExpressionRow) error {
	return replaceFile(path, func(w io.Writer) error {
		writer := parquet.NewGenericWriter[ExpressionRow](w)
		if _, err := writer.Write(rows); err != nil {
			return fmt.Errorf("write expression rows: %w", err)
		}
		if err := writer.Close(); err != nil {
			return fmt.Errorf("close parquet writer: %w", err)
		}
		return nil
	})
}

// replaceFile writes through a temp file in the same directory and renames it
// over path once fill succeeds.
func replaceFile(path string, fill func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = fill(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
