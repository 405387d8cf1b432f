// Package test provides in-memory stubs shared by unit tests.
package test

import (
	"github.com/orderdesk/orderdesk/internal/domain/repository"
	"github.com/orderdesk/orderdesk/internal/pkg/auth"
)

var (
	_ repository.ClientRepository  = (*ClientRepositoryStub)(nil)
	_ repository.ProductRepository = (*ProductRepositoryStub)(nil)
	_ repository.OrderRepository   = (*OrderRepositoryStub)(nil)
	_ auth.PasswordHasher          = (*HasherStub)(nil)
	_ auth.Strategy                = (*StrategyStub)(nil)
)
