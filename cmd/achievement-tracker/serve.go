package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/tupyy/achievement-tracker/api/v1"
	"github.com/tupyy/achievement-tracker/internal/config"
	"github.com/tupyy/achievement-tracker/internal/handlers"
	"github.com/tupyy/achievement-tracker/internal/server"
)

const shutdownTimeout = 10 * time.Second

func NewServeCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			h := handlers.New(a.library, a.collections, a.credentials)
			srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
				v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
			})
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(ctx)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				zap.S().Errorw("failed to stop server", "error", err)
			}
			return <-errCh
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "Server mode: dev or prod")
	flags.IntVar(&cfg.Server.HTTPPort, "http-port", cfg.Server.HTTPPort, "HTTP listen port")
	flags.StringVar(&cfg.Server.StaticsFolder, "statics-folder", cfg.Server.StaticsFolder, "Folder of a built UI served in prod mode")

	return cmd
}
