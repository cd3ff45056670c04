package stock

import (
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("stock Item must be created via NewItem constructor")
)

// Item is the available-quantity counter for one (warehouse, product) pair.
// It is the single authoritative stock figure: pack-outs and ready orders
// consume it, returns and cancellations restock it, and dealer pickups reset
// it to the picked-up quantity.
//
// Item follows these invariants:
//   - quantity is never negative
//   - a rejected consume leaves the item unchanged
//
// The same invariants are enforced at the storage level with an atomic
// conditional decrement, so two concurrent consumers of the same pair can
// never double-spend the counter.
type Item struct {
	warehouseID kernel.UUID
	productID   kernel.UUID
	quantity    int
	price       decimal.Decimal

	isConstructed bool
}

// NewItem creates a counter for a (warehouse, product) pair.
func NewItem(warehouseID, productID kernel.UUID, quantity int, price decimal.Decimal) (*Item, error) {
	if err := errors.Join(warehouseID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	return &Item{
		warehouseID:   warehouseID,
		productID:     productID,
		quantity:      quantity,
		price:         kernel.RoundMoney(price),
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a counter from persistence.
func RestoreItem(warehouseID, productID kernel.UUID, quantity int, price decimal.Decimal) (*Item, error) {
	return NewItem(warehouseID, productID, quantity, price)
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// WarehouseID returns the warehouse reference.
func (i *Item) WarehouseID() kernel.UUID {
	return i.warehouseID
}

// ProductID returns the product reference.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the current available quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the per-package price recorded at the last pickup.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Consume decrements the available quantity. Fails with InsufficientStock
// if the counter holds less than the requested amount, in which case the
// item is left unchanged.
func (i *Item) Consume(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	if i.quantity < amount {
		return errs.NewInsufficientStockError(
			i.warehouseID.String(), i.productID.String(), amount)
	}

	i.quantity -= amount
	return nil
}

// Restock increments the available quantity. Used by returns and order
// cancellations.
func (i *Item) Restock(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	i.quantity += amount
	return nil
}

// Reset sets the counter to a freshly picked-up quantity and price.
// Invoked when a pickup event is recorded for the pair.
func (i *Item) Reset(quantity int, price decimal.Decimal) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	i.quantity = quantity
	i.price = kernel.RoundMoney(price)
	return nil
}
