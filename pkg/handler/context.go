package handler

// DI for all handlers and models alike.

import (
	"github.com/yumyai/atacrna/logger"
	"github.com/yumyai/atacrna/pkg/db"
	"github.com/yumyai/atacrna/pkg/model"
	"go.uber.org/zap"
)

type DBContext struct {
	Data       *db.Dataset
	Timepoints *model.TimepointTable
	Palette    *model.Palette

	TrackDefault       string
	CorrelationDefault string
}

func NewDBContext(data *db.Dataset, defaultGene string) *DBContext {
	return &DBContext{
		Data:               data,
		Timepoints:         model.Timepoints,
		Palette:            model.CellTypePalette,
		TrackDefault:       resolveDefault("track", defaultGene, data.TrackGenes(), data.HasTrackGene),
		CorrelationDefault: resolveDefault("correlation", defaultGene, data.CorrelationGenes(), data.HasCorrelationGene),
	}
}

// resolveDefault keeps the configured gene when the view knows it and falls
// back to the first known gene otherwise.
func resolveDefault(view, gene string, genes []string, known func(string) bool) string {
	if known(gene) || len(genes) == 0 {
		return gene
	}
	logger.Warn("Default gene unknown, using first gene instead",
		zap.String("view", view), zap.String("default", gene), zap.String("fallback", genes[0]))
	return genes[0]
}
