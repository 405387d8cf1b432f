// Package router builds the gin engine and binds handlers to routes.
package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/orderdesk/orderdesk/internal/server/http/handlers"
	"github.com/orderdesk/orderdesk/internal/server/http/middleware"
)

// Params collects everything the router needs.
type Params struct {
	fx.In

	Auth     *handlers.AuthHandler
	Orders   *handlers.OrderHandler
	Products *handlers.ProductHandler
	Resolver middleware.CallerResolver
	Logger   *slog.Logger
}

// New builds the gin engine with compression, request logging and the
// route tree.
func New(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authRequired := middleware.AuthRequired(p.Resolver)

	auth := engine.Group("/auth")
	{
		auth.GET("/", authRequired, p.Auth.Welcome)
		auth.POST("/signup", p.Auth.SignUp)
		auth.POST("/login", p.Auth.Login)
		auth.POST("/login/refresh", p.Auth.Refresh)
	}

	order := engine.Group("/order", authRequired)
	{
		order.POST("/make", p.Orders.Create)
		order.GET("/list", p.Orders.List)
		order.GET("/my/:id", p.Orders.GetOwn)
		order.GET("/:id", p.Orders.Get)
		order.PUT("/update/:id", p.Orders.Update)
		order.PATCH("/update-status", p.Orders.UpdateStatus)
		order.DELETE("/delete/:id", p.Orders.Delete)
	}

	product := engine.Group("/product", authRequired)
	{
		product.POST("/create_product", p.Products.Create)
		product.GET("/list", p.Products.List)
		product.GET("/:id", p.Products.Get)
		product.PATCH("/:id/patch", p.Products.Update)
		product.DELETE("/:id/delete", p.Products.Delete)
	}

	return engine
}
