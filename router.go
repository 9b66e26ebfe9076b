package main

import (
	"io/fs"
	"mime"
	"net/http"

	"github.com/yumyai/atacrna/logger"
	"github.com/yumyai/atacrna/pkg/handler"
	"github.com/yumyai/atacrna/pkg/middle"
	"github.com/yumyai/atacrna/pkg/render"
)

func NewRouter(dbctx *handler.DBContext) http.Handler {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Main routes
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/track", http.StatusFound)
	})
	mux.HandleFunc("GET /track", dbctx.TrackPage)
	mux.HandleFunc("GET /correlation", dbctx.CorrelationPage)

	// API routes
	mux.HandleFunc("GET /api/v1/health", handler.HealthCheck)
	mux.HandleFunc("GET /api/v1/genes", dbctx.GenesAPI)
	mux.HandleFunc("GET /api/v1/track/{gene}", dbctx.TrackAPI)
	mux.HandleFunc("GET /api/v1/correlation/{gene}", dbctx.CorrelationAPI)

	// Static files
	setupStaticFiles(mux)

	zl := logger.L()
	return middle.Chain(mux,
		middle.RequestIDMiddleware(zl),
		middle.LoggingMiddleware(zl),
	)
}

func setupStaticFiles(mux *http.ServeMux) {
	_ = mime.AddExtensionType(".css", "text/css")
	static, err := fs.Sub(render.Static, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
}
