// Package app assembles the use cases behind a single facade and runs
// the HTTP server under the fx lifecycle.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/orderdesk/orderdesk/internal/config"
)

// Module wires the facade and the HTTP server lifecycle.
var Module = fx.Options(
	fx.Provide(NewOrderDeskFacade),
	fx.Provide(newHTTPServer),
	fx.Invoke(registerLifecycle),
)

func newHTTPServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}
}

// LifecycleParams collects what the server lifecycle needs.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Server    *http.Server
	Config    *config.Config
	Logger    *slog.Logger
}

func registerLifecycle(p LifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting http server", "address", p.Server.Addr)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			defer cancel()
			p.Logger.Info("stopping http server")
			return p.Server.Shutdown(shutdownCtx)
		},
	})
}
