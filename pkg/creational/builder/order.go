// Package builder demonstrates step-by-step construction of immutable
// products through a fluent builder.
package builder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for order validation.
var (
	// ErrRestaurantRequired indicates NewOrderBuilder was given an empty
	// restaurant name.
	ErrRestaurantRequired = errors.New("restaurant name is required")

	// ErrNoItems indicates Build was called before any AddItem.
	ErrNoItems = errors.New("order has no items")

	// ErrScheduledInPast indicates ScheduleFor was given a time before now.
	ErrScheduledInPast = errors.New("scheduled time is in the past")
)

// Order is an immutable delivery order. Orders are created only through
// OrderBuilder.Build; all fields are fixed at that point.
type Order struct {
	id            string
	restaurant    string
	items         []string
	address       string
	coupon        string
	instructions  string
	contactless   bool
	scheduledTime time.Time
}

// ID returns the order's unique identifier.
func (o Order) ID() string { return o.id }

// Restaurant returns the restaurant name.
func (o Order) Restaurant() string { return o.restaurant }

// Items returns a copy of the ordered items.
func (o Order) Items() []string {
	items := make([]string, len(o.items))
	copy(items, o.items)
	return items
}

// Address returns the delivery address, empty for pickup.
func (o Order) Address() string { return o.address }

// Coupon returns the applied coupon code, if any.
func (o Order) Coupon() string { return o.coupon }

// Instructions returns the delivery instructions, if any.
func (o Order) Instructions() string { return o.instructions }

// Contactless reports whether contactless delivery was requested.
func (o Order) Contactless() bool { return o.contactless }

// ScheduledTime returns the requested delivery time; zero means ASAP.
func (o Order) ScheduledTime() time.Time { return o.scheduledTime }

// String formats the order for display.
func (o Order) String() string {
	items := "none"
	if len(o.items) > 0 {
		items = strings.Join(o.items, ", ")
	}
	return fmt.Sprintf("Order(%s from %s: %s)", o.id, o.restaurant, items)
}

// OrderBuilder constructs Orders step by step with a chainable interface.
// Builders are not thread-safe; build from a single goroutine.
//
//	order, err := builder.NewOrderBuilder("Datchu").
//	    AddItem("Masala Dosa").
//	    DeliverTo("12 Beach Rd, Chennai").
//	    WithCoupon("FIRST50").
//	    Contactless().
//	    Build()
//
// Validation failures accumulate during chaining and surface at Build, so
// call sites stay chainable without per-step error checks.
type OrderBuilder struct {
	order Order
	errs  []error

	// now is stubbed in tests.
	now func() time.Time
}

// NewOrderBuilder starts an order for the given restaurant.
func NewOrderBuilder(restaurant string) *OrderBuilder {
	b := &OrderBuilder{now: time.Now}
	if strings.TrimSpace(restaurant) == "" {
		b.errs = append(b.errs, ErrRestaurantRequired)
	}
	b.order.restaurant = restaurant
	return b
}

// AddItem appends an item to the order. Blank items are rejected at Build.
func (b *OrderBuilder) AddItem(item string) *OrderBuilder {
	if strings.TrimSpace(item) == "" {
		b.errs = append(b.errs, errors.New("item name cannot be blank"))
		return b
	}
	b.order.items = append(b.order.items, item)
	return b
}

// DeliverTo sets the delivery address. Omit for pickup orders.
func (b *OrderBuilder) DeliverTo(address string) *OrderBuilder {
	b.order.address = address
	return b
}

// WithCoupon applies a coupon code.
func (b *OrderBuilder) WithCoupon(code string) *OrderBuilder {
	b.order.coupon = code
	return b
}

// WithInstructions sets free-form delivery instructions.
func (b *OrderBuilder) WithInstructions(instructions string) *OrderBuilder {
	b.order.instructions = instructions
	return b
}

// Contactless requests contactless delivery.
func (b *OrderBuilder) Contactless() *OrderBuilder {
	b.order.contactless = true
	return b
}

// ScheduleFor sets a future delivery time.
func (b *OrderBuilder) ScheduleFor(at time.Time) *OrderBuilder {
	if at.Before(b.now()) {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrScheduledInPast, at.Format(time.RFC3339)))
		return b
	}
	b.order.scheduledTime = at
	return b
}

// Build validates the accumulated state and returns the immutable Order.
// The order ID is assigned here; a builder may be reused after a failed
// Build once the offending steps are corrected, but each successful Build
// produces an order with a fresh ID.
func (b *OrderBuilder) Build() (Order, error) {
	errs := b.errs
	if len(b.order.items) == 0 {
		errs = append(errs, ErrNoItems)
	}
	if len(errs) > 0 {
		return Order{}, fmt.Errorf("build order: %w", errors.Join(errs...))
	}

	order := b.order
	order.id = uuid.NewString()
	order.items = make([]string, len(b.order.items))
	copy(order.items, b.order.items)
	return order, nil
}
