package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldlewis/simpleblog/internal/config"
	"github.com/ldlewis/simpleblog/internal/server"
	fsstore "github.com/ldlewis/simpleblog/pkg/adapters/fs"
)

var serveCmd = &cobra.Command{
	Use:   "serve <config.yml>",
	Short: "Run the blog server",
	Long:  `Load the site configuration and serve the blog until interrupted.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(args[0])
		if err != nil {
			fatal("Failed to load config", err)
		}

		store := fsstore.NewStore(filepath.Join(cfg.FilePath, "articles.yml"), slog.Default())
		srv := &http.Server{
			Addr:    cfg.Addr(),
			Handler: server.New(cfg, store, slog.Default()).Router(),
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		slog.Info("serving blog", "addr", cfg.Addr(), "content_root", cfg.FilePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("Server failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
