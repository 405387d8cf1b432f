package app

import (
	"context"
	"errors"
	"testing"

	"github.com/orderdesk/orderdesk/internal/authz"
	domainErrors "github.com/orderdesk/orderdesk/internal/domain/errors"
	"github.com/orderdesk/orderdesk/internal/domain/model"
	"github.com/orderdesk/orderdesk/internal/test"
	"github.com/orderdesk/orderdesk/internal/usecase"
)

func newFacade() *OrderDeskFacade {
	clients := test.NewClientRepositoryStub()
	products := test.NewProductRepositoryStub()
	orders := test.NewOrderRepositoryStub()
	orders.Products = products.Products
	orders.Clients = clients.ByID

	engine := authz.NewEngine()
	return NewOrderDeskFacade(FacadeParams{
		Auth:    usecase.NewAuthUseCase(clients, &test.HasherStub{}, &test.StrategyStub{}),
		Catalog: usecase.NewCatalogUseCase(products, engine),
		Orders:  usecase.NewOrderUseCase(orders, products, engine),
	})
}

func signUpAndResolve(t *testing.T, facade *OrderDeskFacade, username string, staff bool) authz.Caller {
	t.Helper()
	ctx := context.Background()
	if _, err := facade.SignUp(ctx, username, username+"@example.com", "secret", staff, true); err != nil {
		t.Fatalf("signup %q: %v", username, err)
	}
	_, pair, err := facade.Login(ctx, username, "secret")
	if err != nil {
		t.Fatalf("login %q: %v", username, err)
	}
	caller, err := facade.ResolveCaller(ctx, pair.Access)
	if err != nil {
		t.Fatalf("resolve %q: %v", username, err)
	}
	return caller
}

// End to end through the facade: staff seeds the catalog, a client
// orders two pizzas, patches the quantity, staff ships it, and the
// client cannot delete it.
func TestFacadeOrderFlow(t *testing.T) {
	ctx := context.Background()
	facade := newFacade()

	staff := signUpAndResolve(t, facade, "boss", true)
	client := signUpAndResolve(t, facade, "alice", false)

	pizza, err := facade.CreateProduct(ctx, staff, "Pizza", 40000)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	detail, err := facade.CreateOrder(ctx, client, pizza.ID, 2)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if got := detail.TotalPrice(); got != 80000 {
		t.Fatalf("total price = %d, want 80000", got)
	}

	quantity := int64(3)
	patched, err := facade.UpdateOrder(ctx, client, detail.Order.ID, model.OrderPatch{Quantity: &quantity})
	if err != nil {
		t.Fatalf("update order: %v", err)
	}
	if got := patched.TotalPrice(); got != 120000 {
		t.Fatalf("total price = %d, want 120000", got)
	}

	shipped, err := facade.UpdateOrderStatus(ctx, staff, detail.Order.ID, model.OrderStatusInTransit)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if shipped.Order.Status != model.OrderStatusInTransit {
		t.Fatalf("status = %q, want IN_TRANSIT", shipped.Order.Status)
	}

	own, err := facade.OwnOrder(ctx, client, detail.Order.ID)
	if err != nil {
		t.Fatalf("own order: %v", err)
	}
	if own.Order.Status != model.OrderStatusInTransit {
		t.Fatalf("owner view status = %q, want IN_TRANSIT", own.Order.Status)
	}

	if err := facade.DeleteOrder(ctx, client, detail.Order.ID); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("client delete: expected ErrForbidden, got %v", err)
	}
}

func TestFacadeRefresh(t *testing.T) {
	ctx := context.Background()
	facade := newFacade()
	signUpAndResolve(t, facade, "alice", false)

	_, pair, err := facade.Login(ctx, "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	access, err := facade.Refresh(ctx, pair.Refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := facade.ResolveCaller(ctx, access); err != nil {
		t.Fatalf("resolve refreshed token: %v", err)
	}
}

func TestFacadeStaffOrderVisibility(t *testing.T) {
	ctx := context.Background()
	facade := newFacade()

	staff := signUpAndResolve(t, facade, "boss", true)
	client := signUpAndResolve(t, facade, "alice", false)

	pizza, err := facade.CreateProduct(ctx, staff, "Pizza", 40000)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	created, err := facade.CreateOrder(ctx, client, pizza.ID, 1)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	orders, err := facade.Orders(ctx, staff)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	detail, err := facade.Order(ctx, staff, created.Order.ID)
	if err != nil {
		t.Fatalf("staff get order: %v", err)
	}
	if detail.Client.Username != "alice" {
		t.Fatalf("staff view owner = %q, want alice", detail.Client.Username)
	}

	if _, err := facade.Orders(ctx, client); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("client list: expected ErrForbidden, got %v", err)
	}
}
