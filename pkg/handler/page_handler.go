package handler

import (
	"errors"
	"net/http"

	"github.com/yumyai/atacrna/logger"
	"github.com/yumyai/atacrna/pkg/figure"
	"github.com/yumyai/atacrna/pkg/handler/request"
	"github.com/yumyai/atacrna/pkg/model"
	"github.com/yumyai/atacrna/pkg/render"
	"go.uber.org/zap"
)

const (
	trackTitle   = "Gene Track and ATAC Peaks"
	trackCaption = "For each gene, the exons and the direction of transcription are drawn along the genomic " +
		"coordinate, together with the ATAC peaks called at each time point."

	correlationTitle   = "ATAC and RNA Correlation"
	correlationCaption = "For each time point, we plot time-resolved scatter plots of ATAC (x-axis) and RNA expression " +
		"(y-axis) for any gene. Each point represents a metacell (SEACell), colored by cell type. The correlation " +
		"between chromatin accessibility and gene expression is also calculated for each time point."
)

// selection turns the submitted form into the genes to draw.
func selection(r *http.Request, defaultGene string, known func(string) bool) model.Selection {
	req := request.ParsePageRequest(r.URL.Query())
	return model.Selection(req.Genes).
		Normalize(defaultGene, known).
		Apply(req.Action.String(), defaultGene)
}

// buildPanels draws one figure per gene. A gene without data gets an inline
// message; any other failure aborts the page.
func buildPanels(genes model.Selection, heading bool, draw func(gene string) (*figure.Figure, error)) ([]render.PlotPanel, error) {
	panels := make([]render.PlotPanel, 0, len(genes))
	for _, gene := range genes {
		fig, err := draw(gene)
		if errors.Is(err, model.ErrGeneNotFound) {
			panels = append(panels, render.PlotPanel{Gene: gene, Heading: heading, Error: err.Error()})
			continue
		}
		if err != nil {
			return nil, err
		}
		panel, err := render.NewPanel(gene, heading, fig)
		if err != nil {
			return nil, err
		}
		panels = append(panels, panel)
	}
	return panels, nil
}

func writePage(w http.ResponseWriter, data render.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.RenderPage(w, data); err != nil {
		logger.Error("Failed to render page", zap.String("title", data.Title), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (dbctx *DBContext) TrackPage(w http.ResponseWriter, r *http.Request) {

	genes := selection(r, dbctx.TrackDefault, dbctx.Data.HasTrackGene)
	logger.Debug("Track page", zap.Strings("genes", genes))

	panels, err := buildPanels(genes, false, func(gene string) (*figure.Figure, error) {
		view, err := dbctx.Data.TrackView(r.Context(), gene, dbctx.Timepoints)
		if err != nil {
			return nil, err
		}
		return render.TrackFigure(view), nil
	})
	if err != nil {
		logger.Error("Render aborted", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writePage(w, render.PageData{
		Title:    trackTitle,
		Caption:  trackCaption,
		Action:   "/track",
		Genes:    dbctx.Data.TrackGenes(),
		Selected: genes,
		Panels:   panels,
	})
}

func (dbctx *DBContext) CorrelationPage(w http.ResponseWriter, r *http.Request) {

	genes := selection(r, dbctx.CorrelationDefault, dbctx.Data.HasCorrelationGene)
	logger.Debug("Correlation page", zap.Strings("genes", genes))

	panels, err := buildPanels(genes, true, func(gene string) (*figure.Figure, error) {
		grid, err := dbctx.Data.Grid(gene, dbctx.Timepoints, dbctx.Palette)
		if err != nil {
			return nil, err
		}
		return render.CorrelationFigure(grid), nil
	})
	if err != nil {
		logger.Error("Render aborted", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writePage(w, render.PageData{
		Title:    correlationTitle,
		Caption:  correlationCaption,
		Action:   "/correlation",
		Genes:    dbctx.Data.CorrelationGenes(),
		Selected: genes,
		Panels:   panels,
	})
}
