package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/orderdesk/orderdesk/internal/domain/errors"
	"github.com/orderdesk/orderdesk/internal/domain/model"
	"github.com/orderdesk/orderdesk/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage. Connections
// are acquired from the pool per query, so no session state leaks
// between requests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

type clientRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Clients() repository.ClientRepository {
	return &clientRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS clients (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'client',
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            price BIGINT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            client_id BIGINT NOT NULL REFERENCES clients(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            quantity BIGINT NOT NULL,
            status TEXT NOT NULL DEFAULT 'PENDING',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_client ON orders(client_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- ClientRepository implementation ---

func (r *clientRepository) Create(ctx context.Context, username, email, passwordHash string, role model.Role, active bool) (*model.Client, error) {
	const query = `INSERT INTO clients (username, email, password_hash, role, is_active)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	var c model.Client
	err := r.storage.pool.QueryRow(ctx, query, username, email, passwordHash, string(role), active).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	c.Username = username
	c.Email = email
	c.PasswordHash = passwordHash
	c.Role = role
	c.Active = active
	return &c, nil
}

func (r *clientRepository) getOne(ctx context.Context, query string, arg any) (*model.Client, error) {
	var c model.Client
	var role string
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Username, &c.Email, &c.PasswordHash, &role, &c.Active, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	c.Role = model.Role(role)
	return &c, nil
}

func (r *clientRepository) GetByUsername(ctx context.Context, username string) (*model.Client, error) {
	const query = `SELECT id, username, email, password_hash, role, is_active, created_at FROM clients WHERE username=$1`
	return r.getOne(ctx, query, username)
}

func (r *clientRepository) GetByEmail(ctx context.Context, email string) (*model.Client, error) {
	const query = `SELECT id, username, email, password_hash, role, is_active, created_at FROM clients WHERE email=$1`
	return r.getOne(ctx, query, email)
}

func (r *clientRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*model.Client, error) {
	const query = `SELECT id, username, email, password_hash, role, is_active, created_at FROM clients WHERE username=$1 OR email=$1`
	return r.getOne(ctx, query, identifier)
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	const query = `SELECT id, username, email, password_hash, role, is_active, created_at FROM clients WHERE id=$1`
	return r.getOne(ctx, query, id)
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, name string, price int64) (*model.Product, error) {
	const query = `INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id, created_at`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, name, price).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Name = name
	p.Price = price
	return &p, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, name, price, created_at FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, price, created_at FROM products ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	const query = `UPDATE products
                   SET name=COALESCE($1, name), price=COALESCE($2, price)
                   WHERE id=$3
                   RETURNING id, name, price, created_at`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, patch.Name, patch.Price, id).Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM products WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, client_id, product_id, quantity, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var status string
	err := row.Scan(&o.ID, &o.ClientID, &o.ProductID, &o.Quantity, &status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	o.Status = model.OrderStatus(status)
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, clientID, productID, quantity int64) (*model.Order, error) {
	const query = `INSERT INTO orders (client_id, product_id, quantity, status)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at, updated_at`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, clientID, productID, quantity, string(model.OrderStatusPending)).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.ClientID = clientID
	o.ProductID = productID
	o.Quantity = quantity
	o.Status = model.OrderStatusPending
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) GetDetail(ctx context.Context, id int64) (*model.OrderDetail, error) {
	const query = `SELECT o.id, o.client_id, o.product_id, o.quantity, o.status, o.created_at, o.updated_at,
                          p.id, p.name, p.price,
                          c.id, c.username, c.email, c.role, c.is_active
                   FROM orders o
                   JOIN products p ON p.id = o.product_id
                   JOIN clients c ON c.id = o.client_id
                   WHERE o.id=$1`
	var d model.OrderDetail
	var orderStatus, role string
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&d.Order.ID, &d.Order.ClientID, &d.Order.ProductID, &d.Order.Quantity, &orderStatus, &d.Order.CreatedAt, &d.Order.UpdatedAt,
		&d.Product.ID, &d.Product.Name, &d.Product.Price,
		&d.Client.ID, &d.Client.Username, &d.Client.Email, &role, &d.Client.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	d.Order.Status = model.OrderStatus(orderStatus)
	d.Client.Role = model.Role(role)
	return &d, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		var status string
		if err := rows.Scan(&o.ID, &o.ClientID, &o.ProductID, &o.Quantity, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.Status = model.OrderStatus(status)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update applies a partial patch: the current row is locked, patched
// fields overwrite it, and the result is written back in one
// transaction.
func (r *orderRepository) Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		current, err := scanOrder(tx.QueryRow(ctx, selectQuery, id))
		if err != nil {
			return err
		}

		if patch.Quantity != nil {
			current.Quantity = *patch.Quantity
		}
		if patch.ProductID != nil {
			current.ProductID = *patch.ProductID
		}
		if patch.Status != nil {
			current.Status = *patch.Status
		}

		const updateQuery = `UPDATE orders SET quantity=$1, product_id=$2, status=$3, updated_at=NOW()
                             WHERE id=$4 RETURNING updated_at`
		if err := tx.QueryRow(ctx, updateQuery, current.Quantity, current.ProductID, string(current.Status), id).Scan(&current.UpdatedAt); err != nil {
			return err
		}
		order = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + orderColumns
	return scanOrder(r.storage.pool.QueryRow(ctx, query, string(status), id))
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM orders WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
