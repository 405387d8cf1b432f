package usecase

import (
	"go.uber.org/fx"

	"github.com/orderdesk/orderdesk/internal/authz"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	authz.NewEngine,
	NewAuthUseCase,
	NewCatalogUseCase,
	NewOrderUseCase,
)
