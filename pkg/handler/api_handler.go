package handler

import (
	"fmt"
	"net/http"

	"github.com/yumyai/atacrna/logger"
	"github.com/yumyai/atacrna/pkg/model"
	"github.com/yumyai/atacrna/pkg/render"
	"go.uber.org/zap"
)

type GenesResponse struct {
	Track       []string `json:"track"`
	Correlation []string `json:"correlation"`
}

// GenesAPI lists the genes each view can draw.
func (dbctx *DBContext) GenesAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GenesResponse{
		Track:       dbctx.Data.TrackGenes(),
		Correlation: dbctx.Data.CorrelationGenes(),
	})
}

// TrackAPI returns the track figure of one gene as plotly JSON.
func (dbctx *DBContext) TrackAPI(w http.ResponseWriter, r *http.Request) {
	gene := r.PathValue("gene")
	logger.Debug("Track figure", zap.String("gene", gene))

	if !dbctx.Data.HasTrackGene(gene) {
		writeError(w, fmt.Errorf("%w: %s", model.ErrGeneNotFound, gene))
		return
	}

	view, err := dbctx.Data.TrackView(r.Context(), gene, dbctx.Timepoints)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, render.TrackFigure(view))
}

// CorrelationAPI returns the correlation grid figure of one gene as plotly JSON.
func (dbctx *DBContext) CorrelationAPI(w http.ResponseWriter, r *http.Request) {
	gene := r.PathValue("gene")
	logger.Debug("Correlation figure", zap.String("gene", gene))

	grid, err := dbctx.Data.Grid(gene, dbctx.Timepoints, dbctx.Palette)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, render.CorrelationFigure(grid))
}
