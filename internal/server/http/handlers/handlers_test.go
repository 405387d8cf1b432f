package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/orderdesk/internal/authz"
	domainErrors "github.com/orderdesk/orderdesk/internal/domain/errors"
	"github.com/orderdesk/orderdesk/internal/domain/model"
	"github.com/orderdesk/orderdesk/internal/server/http/middleware"
	"github.com/orderdesk/orderdesk/internal/usecase"
)

// facadeStub satisfies the handler facades with overridable funcs.
type facadeStub struct {
	SignUpFn            func(ctx context.Context, username, email, password string, isStaff, isActive bool) (*model.Client, error)
	LoginFn             func(ctx context.Context, identifier, password string) (*model.Client, *usecase.TokenPair, error)
	RefreshFn           func(ctx context.Context, refreshToken string) (string, error)
	ResolveCallerFn     func(ctx context.Context, accessToken string) (authz.Caller, error)
	CreateOrderFn       func(ctx context.Context, caller authz.Caller, productID, quantity int64) (*model.OrderDetail, error)
	OrdersFn            func(ctx context.Context, caller authz.Caller) ([]model.Order, error)
	OrderFn             func(ctx context.Context, caller authz.Caller, id int64) (*model.OrderDetail, error)
	OwnOrderFn          func(ctx context.Context, caller authz.Caller, id int64) (*model.OrderDetail, error)
	UpdateOrderFn       func(ctx context.Context, caller authz.Caller, id int64, patch model.OrderPatch) (*model.OrderDetail, error)
	UpdateOrderStatusFn func(ctx context.Context, caller authz.Caller, id int64, status model.OrderStatus) (*model.OrderDetail, error)
	DeleteOrderFn       func(ctx context.Context, caller authz.Caller, id int64) error
	CreateProductFn     func(ctx context.Context, caller authz.Caller, name string, price int64) (*model.Product, error)
	ProductsFn          func(ctx context.Context, caller authz.Caller) ([]model.Product, error)
	ProductFn           func(ctx context.Context, caller authz.Caller, id int64) (*model.Product, error)
	UpdateProductFn     func(ctx context.Context, caller authz.Caller, id int64, patch model.ProductPatch) (*model.Product, error)
	DeleteProductFn     func(ctx context.Context, caller authz.Caller, id int64) error
}

func (s *facadeStub) SignUp(ctx context.Context, username, email, password string, isStaff, isActive bool) (*model.Client, error) {
	return s.SignUpFn(ctx, username, email, password, isStaff, isActive)
}

func (s *facadeStub) Login(ctx context.Context, identifier, password string) (*model.Client, *usecase.TokenPair, error) {
	return s.LoginFn(ctx, identifier, password)
}

func (s *facadeStub) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return s.RefreshFn(ctx, refreshToken)
}

func (s *facadeStub) ResolveCaller(ctx context.Context, accessToken string) (authz.Caller, error) {
	return s.ResolveCallerFn(ctx, accessToken)
}

func (s *facadeStub) CreateOrder(ctx context.Context, caller authz.Caller, productID, quantity int64) (*model.OrderDetail, error) {
	return s.CreateOrderFn(ctx, caller, productID, quantity)
}

func (s *facadeStub) Orders(ctx context.Context, caller authz.Caller) ([]model.Order, error) {
	return s.OrdersFn(ctx, caller)
}

func (s *facadeStub) Order(ctx context.Context, caller authz.Caller, id int64) (*model.OrderDetail, error) {
	return s.OrderFn(ctx, caller, id)
}

func (s *facadeStub) OwnOrder(ctx context.Context, caller authz.Caller, id int64) (*model.OrderDetail, error) {
	return s.OwnOrderFn(ctx, caller, id)
}

func (s *facadeStub) UpdateOrder(ctx context.Context, caller authz.Caller, id int64, patch model.OrderPatch) (*model.OrderDetail, error) {
	return s.UpdateOrderFn(ctx, caller, id, patch)
}

func (s *facadeStub) UpdateOrderStatus(ctx context.Context, caller authz.Caller, id int64, status model.OrderStatus) (*model.OrderDetail, error) {
	return s.UpdateOrderStatusFn(ctx, caller, id, status)
}

func (s *facadeStub) DeleteOrder(ctx context.Context, caller authz.Caller, id int64) error {
	return s.DeleteOrderFn(ctx, caller, id)
}

func (s *facadeStub) CreateProduct(ctx context.Context, caller authz.Caller, name string, price int64) (*model.Product, error) {
	return s.CreateProductFn(ctx, caller, name, price)
}

func (s *facadeStub) Products(ctx context.Context, caller authz.Caller) ([]model.Product, error) {
	return s.ProductsFn(ctx, caller)
}

func (s *facadeStub) Product(ctx context.Context, caller authz.Caller, id int64) (*model.Product, error) {
	return s.ProductFn(ctx, caller, id)
}

func (s *facadeStub) UpdateProduct(ctx context.Context, caller authz.Caller, id int64, patch model.ProductPatch) (*model.Product, error) {
	return s.UpdateProductFn(ctx, caller, id, patch)
}

func (s *facadeStub) DeleteProduct(ctx context.Context, caller authz.Caller, id int64) error {
	return s.DeleteProductFn(ctx, caller, id)
}

var _ OrderDeskFacade = (*facadeStub)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, target string, body any, caller *authz.Caller, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	if caller != nil {
		c.Set(middleware.CallerKey, *caller)
	}
	handler(c)
	c.Writer.WriteHeaderNow()
	return recorder
}

func sampleDetail() *model.OrderDetail {
	return &model.OrderDetail{
		Order:   model.Order{ID: 7, ClientID: 2, ProductID: 1, Quantity: 2, Status: model.OrderStatusPending},
		Product: model.Product{ID: 1, Name: "Pizza", Price: 40000},
		Client:  model.Client{ID: 2, Username: "alice", Email: "alice@example.com"},
	}
}

var testClientCaller = authz.Caller{ID: 2, Username: "alice", Role: model.RoleClient, Active: true}

func TestSignUpHandler(t *testing.T) {
	stub := &facadeStub{
		SignUpFn: func(ctx context.Context, username, email, password string, isStaff, isActive bool) (*model.Client, error) {
			if isStaff {
				t.Fatal("unexpected staff flag")
			}
			if !isActive {
				t.Fatal("is_active must default to true")
			}
			return &model.Client{ID: 1, Username: username, Email: email, Role: model.RoleClient, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub, testLogger())

	rec := performJSON(t, h.SignUp, http.MethodPost, "/auth/signup", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "secret",
	}, nil, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["username"] != "alice" || resp["is_staff"] != false {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestSignUpHandlerDuplicate(t *testing.T) {
	stub := &facadeStub{
		SignUpFn: func(context.Context, string, string, string, bool, bool) (*model.Client, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	}
	h := NewAuthHandler(stub, testLogger())

	rec := performJSON(t, h.SignUp, http.MethodPost, "/auth/signup", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "secret",
	}, nil, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSignUpHandlerBadBody(t *testing.T) {
	h := NewAuthHandler(&facadeStub{}, testLogger())

	rec := performJSON(t, h.SignUp, http.MethodPost, "/auth/signup", gin.H{"username": "alice"}, nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	stub := &facadeStub{
		LoginFn: func(ctx context.Context, identifier, password string) (*model.Client, *usecase.TokenPair, error) {
			if identifier != "alice@example.com" {
				t.Fatalf("unexpected identifier %q", identifier)
			}
			return &model.Client{ID: 1, Username: "alice"}, &usecase.TokenPair{Access: "acc", Refresh: "ref"}, nil
		},
	}
	h := NewAuthHandler(stub, testLogger())

	rec := performJSON(t, h.Login, http.MethodPost, "/auth/login", gin.H{
		"username_or_email": "alice@example.com", "password": "secret",
	}, nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["access_token"] != "acc" || resp["refresh_token"] != "ref" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	stub := &facadeStub{
		LoginFn: func(context.Context, string, string) (*model.Client, *usecase.TokenPair, error) {
			return nil, nil, domainErrors.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, testLogger())

	rec := performJSON(t, h.Login, http.MethodPost, "/auth/login", gin.H{
		"username_or_email": "alice", "password": "wrong",
	}, nil, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRefreshHandler(t *testing.T) {
	stub := &facadeStub{
		RefreshFn: func(ctx context.Context, token string) (string, error) {
			if token != "refresh-token" {
				t.Fatalf("unexpected token %q", token)
			}
			return "new-access", nil
		},
	}
	h := NewAuthHandler(stub, testLogger())

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login/refresh", nil)
	c.Request.Header.Set("Authorization", "Bearer refresh-token")
	h.Refresh(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRefreshHandlerUserGone(t *testing.T) {
	stub := &facadeStub{
		RefreshFn: func(context.Context, string) (string, error) {
			return "", domainErrors.ErrNotFound
		},
	}
	h := NewAuthHandler(stub, testLogger())

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login/refresh", nil)
	c.Request.Header.Set("Authorization", "Bearer refresh-token")
	h.Refresh(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateOrderHandler(t *testing.T) {
	stub := &facadeStub{
		CreateOrderFn: func(ctx context.Context, caller authz.Caller, productID, quantity int64) (*model.OrderDetail, error) {
			if caller.ID != testClientCaller.ID {
				t.Fatalf("caller not propagated: %+v", caller)
			}
			if productID != 1 || quantity != 2 {
				t.Fatalf("unexpected args: product=%d quantity=%d", productID, quantity)
			}
			return sampleDetail(), nil
		},
	}
	h := NewOrderHandler(stub, testLogger())

	rec := performJSON(t, h.Create, http.MethodPost, "/order/make", gin.H{
		"product_id": 1, "quantity": 2,
	}, &testClientCaller, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["total_price"] != float64(80000) {
		t.Fatalf("unexpected total_price: %v", resp["total_price"])
	}
	if _, hasOwner := resp["user"]; hasOwner {
		t.Fatal("own order view must not embed the owner")
	}
}

func TestCreateOrderHandlerUnknownProduct(t *testing.T) {
	stub := &facadeStub{
		CreateOrderFn: func(context.Context, authz.Caller, int64, int64) (*model.OrderDetail, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	h := NewOrderHandler(stub, testLogger())

	rec := performJSON(t, h.Create, http.MethodPost, "/order/make", gin.H{
		"product_id": 777, "quantity": 2,
	}, &testClientCaller, nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListOrdersHandlerForbidden(t *testing.T) {
	stub := &facadeStub{
		OrdersFn: func(context.Context, authz.Caller) ([]model.Order, error) {
			return nil, domainErrors.ErrForbidden
		},
	}
	h := NewOrderHandler(stub, testLogger())

	rec := performJSON(t, h.List, http.MethodGet, "/order/list", nil, &testClientCaller, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestGetOrderHandlerNotFoundIsNoContent(t *testing.T) {
	stub := &facadeStub{
		OrderFn: func(context.Context, authz.Caller, int64) (*model.OrderDetail, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	h := NewOrderHandler(stub, testLogger())

	rec := performJSON(t, h.Get, http.MethodGet, "/order/99", nil, &testClientCaller, gin.Params{{Key: "id", Value: "99"}})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestGetOrderHandlerIncludesOwner(t *testing.T) {
	stub := &facadeStub{
		OrderFn: func(context.Context, authz.Caller, int64) (*model.OrderDetail, error) {
			return sampleDetail(), nil
		},
	}
	h := NewOrderHandler(stub, testLogger())

	rec := performJSON(t, h.Get, http.MethodGet, "/order/7", nil, &testClientCaller, gin.Params{{Key: "id", Value: "7"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	owner, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("staff view must embed the owner: %v", resp)
	}
	if owner["username"] != "alice" {
		t.Fatalf("unexpected owner: %v", owner)
	}
}

func TestGetOwnOrderHandlerNotFoundIsNoContent(t *testing.T) {
	stub := &facadeStub{
		OwnOrderFn: func(context.Context, authz.Caller, int64) (*model.OrderDetail, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	h := NewOrderHandler(stub, testLogger())

	rec := performJSON(t, h.GetOwn, http.MethodGet, "/order/my/99", nil, &testClientCaller, gin.Params{{Key: "id", Value: "99"}})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestUpdateOrderHandler(t *testing.T) {
	stub := &facadeStub{
		UpdateOrderFn: func(ctx context.Context, caller authz.Caller, id int64, patch model.OrderPatch) (*model.OrderDetail, error) {
			if id != 7 {
				t.Fatalf("unexpected id %d", id)
			}
			if patch.Quantity == nil || *patch.Quantity != 3 {
				t.Fatalf("quantity not bound: %+v", patch)
			}
			if patch.ProductID != nil || patch.Status != nil {
				t.Fatalf("absent fields must stay nil: %+v", patch)
			}
			detail := sampleDetail()
			detail.Order.Quantity = 3
			return detail, nil
		},
	}
	h := NewOrderHandler(stub, testLogger())

	rec := performJSON(t, h.Update, http.MethodPut, "/order/update/7", gin.H{"quantity": 3}, &testClientCaller, gin.Params{{Key: "id", Value: "7"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["total_price"] != float64(120000) {
		t.Fatalf("unexpected total_price: %v", resp["total_price"])
	}
}

func TestUpdateOrderHandlerNotOwner(t *testing.T) {
	stub := &facadeStub{
		UpdateOrderFn: func(context.Context, authz.Caller, int64, model.OrderPatch) (*model.OrderDetail, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	h := NewOrderHandler(stub, testLogger())

	rec := performJSON(t, h.Update, http.MethodPut, "/order/update/7", gin.H{"quantity": 3}, &testClientCaller, gin.Params{{Key: "id", Value: "7"}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	stub := &facadeStub{
		UpdateOrderStatusFn: func(ctx context.Context, caller authz.Caller, id int64, status model.OrderStatus) (*model.OrderDetail, error) {
			if id != 7 || status != model.OrderStatusInTransit {
				t.Fatalf("unexpected args: id=%d status=%q", id, status)
			}
			detail := sampleDetail()
			detail.Order.Status = model.OrderStatusInTransit
			return detail, nil
		},
	}
	h := NewOrderHandler(stub, testLogger())

	rec := performJSON(t, h.UpdateStatus, http.MethodPatch, "/order/update-status", gin.H{
		"order_id": 7, "status": "IN_TRANSIT",
	}, &testClientCaller, nil)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
}

func TestUpdateOrderStatusHandlerDenials(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"forbidden", domainErrors.ErrForbidden, http.StatusForbidden},
		{"not found", domainErrors.ErrNotFound, http.StatusNoContent},
		{"bad status", domainErrors.ErrInvalidInput, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &facadeStub{
				UpdateOrderStatusFn: func(context.Context, authz.Caller, int64, model.OrderStatus) (*model.OrderDetail, error) {
					return nil, tc.err
				},
			}
			h := NewOrderHandler(stub, testLogger())

			rec := performJSON(t, h.UpdateStatus, http.MethodPatch, "/order/update-status", gin.H{
				"order_id": 7, "status": "IN_TRANSIT",
			}, &testClientCaller, nil)

			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestDeleteOrderHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"deleted", nil, http.StatusOK},
		{"forbidden", domainErrors.ErrForbidden, http.StatusForbidden},
		{"missing", domainErrors.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &facadeStub{
				DeleteOrderFn: func(context.Context, authz.Caller, int64) error { return tc.err },
			}
			h := NewOrderHandler(stub, testLogger())

			rec := performJSON(t, h.Delete, http.MethodDelete, "/order/delete/7", nil, &testClientCaller, gin.Params{{Key: "id", Value: "7"}})
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestCreateProductHandler(t *testing.T) {
	stub := &facadeStub{
		CreateProductFn: func(ctx context.Context, caller authz.Caller, name string, price int64) (*model.Product, error) {
			return &model.Product{ID: 1, Name: name, Price: price}, nil
		},
	}
	h := NewProductHandler(stub, testLogger())

	rec := performJSON(t, h.Create, http.MethodPost, "/product/create_product", gin.H{
		"name": "Pizza", "price": 40000,
	}, &testClientCaller, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestCreateProductHandlerForbidden(t *testing.T) {
	stub := &facadeStub{
		CreateProductFn: func(context.Context, authz.Caller, string, int64) (*model.Product, error) {
			return nil, domainErrors.ErrForbidden
		},
	}
	h := NewProductHandler(stub, testLogger())

	rec := performJSON(t, h.Create, http.MethodPost, "/product/create_product", gin.H{
		"name": "Pizza", "price": 40000,
	}, &testClientCaller, nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestListProductsHandlerEmptyIsNotFound(t *testing.T) {
	stub := &facadeStub{
		ProductsFn: func(context.Context, authz.Caller) ([]model.Product, error) { return nil, nil },
	}
	h := NewProductHandler(stub, testLogger())

	rec := performJSON(t, h.List, http.MethodGet, "/product/list", nil, &testClientCaller, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListProductsHandler(t *testing.T) {
	stub := &facadeStub{
		ProductsFn: func(context.Context, authz.Caller) ([]model.Product, error) {
			return []model.Product{{ID: 1, Name: "Pizza", Price: 40000}}, nil
		},
	}
	h := NewProductHandler(stub, testLogger())

	rec := performJSON(t, h.List, http.MethodGet, "/product/list", nil, &testClientCaller, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "Pizza" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestUpdateProductHandlerAccepted(t *testing.T) {
	stub := &facadeStub{
		UpdateProductFn: func(ctx context.Context, caller authz.Caller, id int64, patch model.ProductPatch) (*model.Product, error) {
			if patch.Price == nil || *patch.Price != 45000 {
				t.Fatalf("price not bound: %+v", patch)
			}
			if patch.Name != nil {
				t.Fatalf("absent name must stay nil: %+v", patch)
			}
			return &model.Product{ID: id, Name: "Pizza", Price: *patch.Price}, nil
		},
	}
	h := NewProductHandler(stub, testLogger())

	rec := performJSON(t, h.Update, http.MethodPatch, "/product/1/patch", gin.H{"price": 45000}, &testClientCaller, gin.Params{{Key: "id", Value: "1"}})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	stub := &facadeStub{
		DeleteProductFn: func(context.Context, authz.Caller, int64) error { return nil },
	}
	h := NewProductHandler(stub, testLogger())

	rec := performJSON(t, h.Delete, http.MethodDelete, "/product/1/delete", nil, &testClientCaller, gin.Params{{Key: "id", Value: "1"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
