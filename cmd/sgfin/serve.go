package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rgehrsitz/sgfin/internal/api"
	"github.com/rgehrsitz/sgfin/internal/cache"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.logger.Sync()
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				a.cfg.Server.Address = addr
			}

			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			c := a.openCache()
			if r, ok := c.(*cache.Redis); ok {
				defer r.Close()
				pingCtx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
				if err := r.Ping(pingCtx); err != nil {
					a.logger.Warn("redis unavailable, caching disabled",
						zap.String("addr", a.cfg.Cache.RedisAddr), zap.Error(err))
					c = cache.Nop{}
				}
				cancel()
			}

			h := api.NewHandler(a.engine, a.parser, st, c, a.logger)
			h.CacheTTL = a.cfg.Cache.TTL
			h.Preparer = a.cfg.Preparer.Preparer()
			h.ReportFormat = a.cfg.Report.Format

			srv := api.NewServer(a.cfg.Server.Address, api.NewRouter(h, a.cfg.Server.CORSOrigins))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("server starting",
					zap.String("addr", a.cfg.Server.Address),
					zap.String("store", a.cfg.Store.Driver),
					zap.String("cache", a.cfg.Cache.Driver))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (overrides server.address)")
	return cmd
}
