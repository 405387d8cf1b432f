// Package authz centralizes the permission and state-transition rules
// for order and catalog operations. Handlers resolve the caller and load
// the target rows, then ask the engine whether the action is allowed;
// the same decisions apply regardless of transport.
package authz

import (
	"fmt"

	domainErrors "github.com/orderdesk/orderdesk/internal/domain/errors"
	"github.com/orderdesk/orderdesk/internal/domain/model"
)

// Caller is the identity resolved from a validated access token.
type Caller struct {
	ID       int64
	Username string
	Role     model.Role
	Active   bool
}

// IsStaff reports whether the caller holds the staff role.
func (c Caller) IsStaff() bool {
	return c.Role == model.RoleStaff
}

// Owns reports whether the caller owns the given order.
func (c Caller) Owns(order *model.Order) bool {
	return order != nil && order.ClientID == c.ID
}

// Reason classifies why a request was denied.
type Reason string

const (
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonForbidden       Reason = "forbidden"
	ReasonNotFound        Reason = "not_found"
	ReasonInvalidInput    Reason = "invalid_input"
)

// Decision is the outcome of a single authorization check. Every denial
// is terminal for the request that triggered it.
type Decision struct {
	Allowed bool
	Reason  Reason
	Detail  string
}

func permit() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason, detail string) Decision {
	return Decision{Reason: reason, Detail: detail}
}

// Err maps a denial onto the domain error taxonomy. Permitted decisions
// yield nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	var sentinel error
	switch d.Reason {
	case ReasonUnauthenticated:
		sentinel = domainErrors.ErrUnauthenticated
	case ReasonForbidden:
		sentinel = domainErrors.ErrForbidden
	case ReasonNotFound:
		sentinel = domainErrors.ErrNotFound
	default:
		sentinel = domainErrors.ErrInvalidInput
	}
	if d.Detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, d.Detail)
}

// Engine evaluates the authorization predicates for all order and
// catalog actions.
type Engine struct{}

// NewEngine constructs the authorization engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Create permits any authenticated caller to place an order against an
// existing product with a positive quantity. The resulting order is
// PENDING and owned by the caller.
func (e *Engine) Create(caller Caller, product *model.Product, quantity int64) Decision {
	if quantity <= 0 {
		return deny(ReasonInvalidInput, "quantity must be positive")
	}
	if product == nil {
		return deny(ReasonNotFound, "product not found")
	}
	return permit()
}

// ListAny permits staff to list every order in the system.
func (e *Engine) ListAny(caller Caller) Decision {
	if !caller.IsStaff() {
		return deny(ReasonForbidden, "only staff can list all orders")
	}
	return permit()
}

// ViewAny permits staff to view any order, including owner detail.
func (e *Engine) ViewAny(caller Caller, order *model.Order) Decision {
	if !caller.IsStaff() {
		return deny(ReasonForbidden, "only staff can get an order by id")
	}
	if order == nil {
		return deny(ReasonNotFound, "order not found")
	}
	return permit()
}

// ViewOwn permits a caller to view an order they own. A missing order
// and an ownership mismatch are both reported as not found.
func (e *Engine) ViewOwn(caller Caller, order *model.Order) Decision {
	if order == nil || !caller.Owns(order) {
		return deny(ReasonNotFound, "order not found")
	}
	return permit()
}

// UpdateDetails permits the owner to apply a partial update. Supplied
// fields overwrite unconditionally, status included; ownership mismatch
// is reported as not found.
func (e *Engine) UpdateDetails(caller Caller, order *model.Order) Decision {
	if order == nil {
		return deny(ReasonNotFound, "order not found, id is wrong")
	}
	if !caller.Owns(order) {
		return deny(ReasonNotFound, "your order is not found")
	}
	return permit()
}

// UpdateStatus permits staff to set any declared status on any order,
// with no transition-graph validation.
func (e *Engine) UpdateStatus(caller Caller, order *model.Order) Decision {
	if !caller.IsStaff() {
		return deny(ReasonForbidden, "only staff can update an order's status")
	}
	if order == nil {
		return deny(ReasonNotFound, "order not found")
	}
	return permit()
}

// Delete permits deletion only when the order exists, the caller is
// staff, and the caller literally owns the order. The final PENDING
// clause is kept as shipped: it can never fail because the staff check
// above already passed.
func (e *Engine) Delete(caller Caller, order *model.Order) Decision {
	if order == nil {
		return deny(ReasonNotFound, "order not found")
	}
	if !caller.IsStaff() {
		return deny(ReasonForbidden, "you can not delete this order")
	}
	if !caller.Owns(order) {
		return deny(ReasonForbidden, "this isn't your order, so you can't cancel it")
	}
	if order.Status != model.OrderStatusPending && !caller.IsStaff() {
		return deny(ReasonInvalidInput, "you can cancel the order only while it's pending")
	}
	return permit()
}

// ManageProducts permits staff to create, update, and delete catalog
// products.
func (e *Engine) ManageProducts(caller Caller) Decision {
	if !caller.IsStaff() {
		return deny(ReasonForbidden, "only staff can manage products")
	}
	return permit()
}

// ViewProducts permits staff to browse the catalog.
func (e *Engine) ViewProducts(caller Caller) Decision {
	if !caller.IsStaff() {
		return deny(ReasonForbidden, "only staff can view products")
	}
	return permit()
}
