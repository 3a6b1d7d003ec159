package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mediaprobe/internal/api"
	"mediaprobe/internal/deps"
	"mediaprobe/internal/extraction"
	"mediaprobe/internal/logging"
	"mediaprobe/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bindFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd, ctx, bindFlag)
		},
	}
	cmd.Flags().StringVar(&bindFlag, "bind", "", "Override server.bind (host:port)")
	return cmd
}

func runServe(cmdCtx context.Context, cmd *cobra.Command, ctx *commandContext, bind string) error {
	if cmdCtx == nil {
		cmdCtx = context.Background()
	}
	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if bind != "" {
		cfg.Server.Bind = bind
	}
	logger, err := ctx.newLogger(cmd)
	if err != nil {
		return err
	}

	if ctx.configRead {
		logger.Info("configuration loaded", logging.String("path", ctx.configPath))
	} else {
		logger.Info("no configuration file found; using defaults", logging.String("path", ctx.configPath))
	}
	for _, status := range deps.CheckBinaries(deps.Requirements(cfg)) {
		attrs := logging.Args(
			logging.String("dependency", status.Name),
			logging.String("command", status.Command),
			logging.Bool("optional", status.Optional),
		)
		switch {
		case status.Available:
			logger.Info("dependency available", attrs...)
		case status.Optional:
			logger.Warn("optional dependency missing", append(attrs, logging.String("detail", status.Detail))...)
		default:
			logger.Error("required dependency missing; extraction requests will fail", append(attrs, logging.String("detail", status.Detail))...)
		}
	}

	adapter := extraction.NewAdapter(cfg, extraction.WithLogger(logger))
	defer adapter.Close()
	logger.Info("extraction pool ready",
		logging.Int("workers", adapter.Workers()),
		logging.Duration("timeout", cfg.ExtractionTimeout()),
	)

	srv, err := server.New(cfg, api.NewService(adapter), logger)
	if err != nil {
		return err
	}
	if err := srv.Start(signalCtx); err != nil {
		return err
	}

	<-signalCtx.Done()
	logger.Info("shutdown requested")
	srv.Stop()
	<-srv.Done()
	return nil
}
