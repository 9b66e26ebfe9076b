package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/yumyai/atacrna/internal/config"
	"github.com/yumyai/atacrna/logger"
	"github.com/yumyai/atacrna/pkg/db"
	"github.com/yumyai/atacrna/pkg/handler"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the track and correlation pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", config.DefaultAddr, "listen address")
	_ = a.v.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	if err := a.cfg.RequireData(); err != nil {
		return err
	}

	logger.Info("Start:", zap.String("Version", version))

	data, err := db.LoadDataset(ctx, a.cfg.DataDir)
	if err != nil {
		return err
	}
	defer data.Close()

	dbctx := handler.NewDBContext(data, a.cfg.DefaultGene)
	server := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           NewRouter(dbctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", a.cfg.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Error starting server:", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
