package test

import (
	"context"

	domainErrors "github.com/orderdesk/orderdesk/internal/domain/errors"
	"github.com/orderdesk/orderdesk/internal/domain/model"
)

// ClientRepositoryStub stores clients in-memory for tests.
type ClientRepositoryStub struct {
	ByUsername map[string]*model.Client
	ByEmail    map[string]*model.Client
	ByID       map[int64]*model.Client
	Next       int64
	Err        error
}

// NewClientRepositoryStub constructs stub repository with initialized maps.
func NewClientRepositoryStub() *ClientRepositoryStub {
	return &ClientRepositoryStub{
		ByUsername: make(map[string]*model.Client),
		ByEmail:    make(map[string]*model.Client),
		ByID:       make(map[int64]*model.Client),
		Next:       1,
	}
}

// Create registers a client unless username or email is taken.
func (s *ClientRepositoryStub) Create(ctx context.Context, username, email, passwordHash string, role model.Role, active bool) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByUsername[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	client := &model.Client{
		ID:           s.Next,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       active,
	}
	s.Next++
	s.ByUsername[username] = client
	s.ByEmail[email] = client
	s.ByID[client.ID] = client
	return client, nil
}

// GetByUsername fetches a client by username or returns not found.
func (s *ClientRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByUsername[username]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches a client by email or returns not found.
func (s *ClientRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByEmail[email]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUsernameOrEmail matches either unique identifier.
func (s *ClientRepositoryStub) GetByUsernameOrEmail(ctx context.Context, identifier string) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByUsername[identifier]; ok {
		return client, nil
	}
	if client, ok := s.ByEmail[identifier]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a client by identifier or returns not found.
func (s *ClientRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByID[id]; ok {
		return client, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Create registers a product with the next free identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, name string, price int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	product := &model.Product{ID: s.Next, Name: name, Price: price}
	s.Next++
	s.Products[product.ID] = product
	return product, nil
}

// GetByID fetches a product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		result = append(result, *p)
	}
	return result, nil
}

// Update applies a partial patch to a stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	product, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	return product, nil
}

// Delete removes a stored product.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// OrderRepositoryStub stores orders in-memory, with per-method overrides.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, int64, int64, int64) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	GetDetailFn    func(context.Context, int64) (*model.OrderDetail, error)
	ListFn         func(context.Context) ([]model.Order, error)
	UpdateFn       func(context.Context, int64, model.OrderPatch) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	DeleteFn       func(context.Context, int64) error

	Orders   map[int64]*model.Order
	Clients  map[int64]*model.Client
	Products map[int64]*model.Product
	Next     int64
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders:   make(map[int64]*model.Order),
		Clients:  make(map[int64]*model.Client),
		Products: make(map[int64]*model.Product),
		Next:     1,
	}
}

// Create stores a new pending order.
func (s *OrderRepositoryStub) Create(ctx context.Context, clientID, productID, quantity int64) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, clientID, productID, quantity)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	order := &model.Order{ID: s.Next, ClientID: clientID, ProductID: productID, Quantity: quantity, Status: model.OrderStatusPending}
	s.Next++
	s.Orders[order.ID] = order
	return order, nil
}

// GetByID returns the stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetDetail joins the stored order with registered client and product.
func (s *OrderRepositoryStub) GetDetail(ctx context.Context, id int64) (*model.OrderDetail, error) {
	if s.GetDetailFn != nil {
		return s.GetDetailFn(ctx, id)
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	detail := &model.OrderDetail{Order: *order}
	if client, ok := s.Clients[order.ClientID]; ok {
		detail.Client = *client
	}
	if product, ok := s.Products[order.ProductID]; ok {
		detail.Product = *product
	}
	return detail, nil
}

// List returns all stored orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	result := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		result = append(result, *o)
	}
	return result, nil
}

// Update applies a partial patch to the stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Quantity != nil {
		order.Quantity = *patch.Quantity
	}
	if patch.ProductID != nil {
		order.ProductID = *patch.ProductID
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	copied := *order
	return &copied, nil
}

// UpdateStatus sets the stored order status.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order.Status = status
	copied := *order
	return &copied, nil
}

// Delete removes the stored order.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return nil
}
