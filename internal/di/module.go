// Package di assembles the complete application graph.
package di

import (
	"go.uber.org/fx"

	"github.com/orderdesk/orderdesk/internal/app"
	"github.com/orderdesk/orderdesk/internal/config"
	"github.com/orderdesk/orderdesk/internal/logger"
	pkgAuth "github.com/orderdesk/orderdesk/internal/pkg/auth"
	"github.com/orderdesk/orderdesk/internal/server/http/router"
	"github.com/orderdesk/orderdesk/internal/storage/postgres"
	"github.com/orderdesk/orderdesk/internal/usecase"
)

// Module combines every application layer into one fx option.
func Module() fx.Option {
	return fx.Options(
		config.Module,
		logger.Module,
		pkgAuth.Module,
		postgres.Module,
		usecase.Module,
		app.Module,
		router.Module,
	)
}
