package db

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/yumyai/atacrna/internal/util"
	"github.com/yumyai/atacrna/logger"
	"github.com/yumyai/atacrna/pkg/model"
	"go.uber.org/zap"
)

// DatabasePath and ExpressionPath locate the two stores inside a data directory.
func DatabasePath(dataDir string) string {
	return filepath.Join(dataDir, "db", "atacrna.db")
}

func ExpressionPath(dataDir string) string {
	return filepath.Join(dataDir, "expression.parquet")
}

// Dataset bundles the reference tables with the in-memory expression matrix.
// It is read-only once loaded.
type Dataset struct {
	Store      *Store
	Expression model.ExpressionSet

	trackGenes       []string
	correlationGenes []string
}

// LoadDataset opens the sqlite store under dataDir and reads the expression
// matrix when present. A missing matrix leaves the correlation view empty.
func LoadDataset(ctx context.Context, dataDir string) (*Dataset, error) {
	store, err := Open(DatabasePath(dataDir))
	if err != nil {
		return nil, err
	}

	trackGenes, err := store.GeneNames(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}

	expression := model.ExpressionSet{}
	exprPath := ExpressionPath(dataDir)
	if util.FileExists(exprPath) {
		expression, err = LoadExpression(exprPath)
		if err != nil {
			store.Close()
			return nil, err
		}
	} else {
		logger.Warn("No expression matrix found", zap.String("path", exprPath))
	}

	correlationGenes := expression.Genes()
	sort.Strings(correlationGenes)

	logger.Info("Dataset loaded",
		zap.String("db", store.Path()),
		zap.Int("track_genes", len(trackGenes)),
		zap.Int("correlation_genes", len(correlationGenes)))

	return &Dataset{
		Store:            store,
		Expression:       expression,
		trackGenes:       trackGenes,
		correlationGenes: correlationGenes,
	}, nil
}

func (d *Dataset) Close() error {
	return d.Store.Close()
}

// TrackGenes lists genes that have exon records.
func (d *Dataset) TrackGenes() []string {
	return append([]string(nil), d.trackGenes...)
}

// CorrelationGenes lists genes present in the expression matrix.
func (d *Dataset) CorrelationGenes() []string {
	return append([]string(nil), d.correlationGenes...)
}

func (d *Dataset) HasTrackGene(gene string) bool {
	return contains(d.trackGenes, gene)
}

func (d *Dataset) HasCorrelationGene(gene string) bool {
	_, ok := d.Expression[gene]
	return ok
}

// TrackView loads a gene's exons and peaks and lays them out.
func (d *Dataset) TrackView(ctx context.Context, gene string, table *model.TimepointTable) (*model.TrackView, error) {
	exons, err := d.Store.GeneRecords(ctx, gene)
	if err != nil {
		return nil, err
	}
	peaks, err := d.Store.Peaks(ctx, gene)
	if err != nil {
		return nil, err
	}
	view, err := model.BuildTrackView(gene, exons, peaks, table)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", gene, err)
	}
	return view, nil
}

// Grid arranges a gene's expression data into the per-timepoint panel grid.
func (d *Dataset) Grid(gene string, table *model.TimepointTable, palette *model.Palette) (*model.Grid, error) {
	grid, err := model.BuildGrid(gene, d.Expression[gene], table, palette)
	if err != nil {
		return nil, fmt.Errorf("correlation %s: %w", gene, err)
	}
	return grid, nil
}

func contains(list []string, s string) bool {
	i := sort.SearchStrings(list, s)
	return i < len(list) && list[i] == s
}
