package router

import (
	"go.uber.org/fx"

	"github.com/orderdesk/orderdesk/internal/app"
	"github.com/orderdesk/orderdesk/internal/server/http/handlers"
	"github.com/orderdesk/orderdesk/internal/server/http/middleware"
)

// Module provides the handlers and the gin engine. The concrete facade
// is narrowed to the per-handler interfaces here.
var Module = fx.Provide(
	func(f *app.OrderDeskFacade) handlers.AuthFacade { return f },
	func(f *app.OrderDeskFacade) handlers.OrderFacade { return f },
	func(f *app.OrderDeskFacade) handlers.CatalogFacade { return f },
	func(f *app.OrderDeskFacade) middleware.CallerResolver { return f },
	handlers.NewAuthHandler,
	handlers.NewOrderHandler,
	handlers.NewProductHandler,
	New,
)
