package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	grpcctx "github.com/dtroode/emr-server/internal/api/grpc/context"
	"github.com/dtroode/emr-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/emr-server/internal/api/grpc/server"
	"github.com/dtroode/emr-server/internal/app"
	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
	"github.com/dtroode/emr-server/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the EMR over gRPC",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (c *cli) serve(ctx context.Context, out io.Writer) error {
	cfg := c.cfg
	logger := logger.New(cfg.LogLevel)

	medium, closeMedium, err := app.OpenMedium(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := closeMedium(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	emr, err := app.New(ctx, medium, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	ctxMgr := grpcctx.NewManager()
	r := router.New(emr.Handler(ctxMgr, logger), emr.Tokens, ctxMgr, cfg.RateLimit, logger)
	s, health := r.Register()
	grpcServer := grpcServer.NewGRPCServer(s, health, fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	served := make(chan error, 1)
	go func(s model.Server) {
		logger.Info("Starting server on", "address", s.Address(), "medium", cfg.Medium.Driver)
		served <- s.Start(sl)
	}(grpcServer)

	logAppVersion(out)

	select {
	case err := <-served:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("received interruption signal, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	if err := <-served; err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		logger.Error("server stopped with error", "error", err)
	}
	logger.Info("shutdown complete")
	return nil
}
