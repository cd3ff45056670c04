package stock

import (
	"errors"
	"fmt"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPickupEventIsNotConstructed is returned when a PickupEvent instance was
// not created through the NewPickupEvent factory method.
var ErrPickupEventIsNotConstructed = errors.New("PickupEvent must be created via NewPickupEvent constructor")

// PickupEvent is an immutable record of a dealer pickup: the staff collected
// `quantity` units of a product into a warehouse, moving the counter from
// previousQuantity to newQuantity at the recorded price.
//
// Events are append-only; they exist for audit and never change after
// insertion. The Item counter carries the current quantity.
type PickupEvent struct {
	id               kernel.UUID
	dealerID         kernel.UUID
	staffID          kernel.UUID
	warehouseID      kernel.UUID
	productID        kernel.UUID
	previousQuantity int
	newQuantity      int
	quantity         int
	price            decimal.Decimal
	recordedAt       time.Time

	isConstructed bool
}

// NewPickupEvent creates an immutable pickup record.
func NewPickupEvent(
	id kernel.UUID,
	dealerID kernel.UUID,
	staffID kernel.UUID,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	previousQuantity int,
	newQuantity int,
	quantity int,
	price decimal.Decimal,
	recordedAt time.Time,
) (*PickupEvent, error) {
	if err := errors.Join(
		id.Validate(),
		dealerID.Validate(),
		staffID.Validate(),
		warehouseID.Validate(),
		productID.Validate(),
	); err != nil {
		return nil, err
	}

	if previousQuantity < 0 || newQuantity < 0 || quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("pickup quantities must not be negative (previous=%d, new=%d, quantity=%d)",
				previousQuantity, newQuantity, quantity))
	}

	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	return &PickupEvent{
		id:               id,
		dealerID:         dealerID,
		staffID:          staffID,
		warehouseID:      warehouseID,
		productID:        productID,
		previousQuantity: previousQuantity,
		newQuantity:      newQuantity,
		quantity:         quantity,
		price:            kernel.RoundMoney(price),
		recordedAt:       recordedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the event was created through the constructor.
func (e *PickupEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrPickupEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *PickupEvent) ID() kernel.UUID { return e.id }

// DealerID returns the dealer the stock was picked up for.
func (e *PickupEvent) DealerID() kernel.UUID { return e.dealerID }

// StaffID returns the staff who performed the pickup.
func (e *PickupEvent) StaffID() kernel.UUID { return e.staffID }

// WarehouseID returns the receiving warehouse.
func (e *PickupEvent) WarehouseID() kernel.UUID { return e.warehouseID }

// ProductID returns the picked-up product.
func (e *PickupEvent) ProductID() kernel.UUID { return e.productID }

// PreviousQuantity returns the counter value before the pickup.
func (e *PickupEvent) PreviousQuantity() int { return e.previousQuantity }

// NewQuantity returns the counter value established by the pickup.
func (e *PickupEvent) NewQuantity() int { return e.newQuantity }

// Quantity returns the picked-up quantity.
func (e *PickupEvent) Quantity() int { return e.quantity }

// Price returns the per-package price at pickup time.
func (e *PickupEvent) Price() decimal.Decimal { return e.price }

// RecordedAt returns the insertion instant.
func (e *PickupEvent) RecordedAt() time.Time { return e.recordedAt }
