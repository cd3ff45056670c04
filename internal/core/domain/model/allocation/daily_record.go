package allocation

import (
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

var (
	// ErrDailyRecordIsNotConstructed is returned when a DailyRecord instance
	// was not created through the NewDailyRecord factory method.
	ErrDailyRecordIsNotConstructed = errors.New("DailyRecord must be created via NewDailyRecord constructor")

	// ErrAlreadyReturned is returned when marking a record returned twice.
	ErrAlreadyReturned = errors.New("daily record is already marked returned")
)

// Mode selects the pack-out bookkeeping semantics.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined mode.
	ModeUnknown Mode = iota

	// ModeReplace stores the latest out quantity for the day; the stock
	// ledger is reconciled by the delta versus the previous value.
	ModeReplace

	// ModeAccumulate adds the pack-out to the day's running total; the
	// stock ledger is consumed by exactly the added amount.
	ModeAccumulate
)

// Validate checks that the mode is one of the two defined semantics.
func (m Mode) Validate() error {
	if m != ModeReplace && m != ModeAccumulate {
		return errs.NewValueIsInvalidErrorWithCause("mode",
			fmt.Errorf("%d is not a valid pack-out mode", m))
	}
	return nil
}

// String returns the human-readable name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeReplace:
		return "Replace"
	case ModeAccumulate:
		return "Accumulate"
	default:
		return "Unknown"
	}
}

// ModeFromString parses a mode from its string representation.
func ModeFromString(s string) (Mode, error) {
	switch s {
	case "Replace":
		return ModeReplace, nil
	case "Accumulate":
		return ModeAccumulate, nil
	default:
		return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("mode",
			fmt.Errorf("%q is not a valid pack-out mode", s))
	}
}

// DailyRecord is the per (warehouse, product, packer, day) allocation record:
// how much the packer handed to a delivery staff that day, how much of it was
// sold, and whether the unsold remainder went back to the warehouse.
//
// Invariants:
//   - outQuantity and sellQuantity are never negative
//   - a returned record accepts no further pack-outs
type DailyRecord struct {
	packerID        kernel.UUID
	deliveryStaffID kernel.UUID
	warehouseID     kernel.UUID
	productID       kernel.UUID
	dealerID        kernel.UUID
	day             kernel.Day

	outQuantity  int
	sellQuantity int
	isReturned   bool

	isConstructed bool
}

// NewDailyRecord creates the day's first allocation record for a
// (warehouse, product, packer) combination.
func NewDailyRecord(
	packerID kernel.UUID,
	deliveryStaffID kernel.UUID,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	dealerID kernel.UUID,
	day kernel.Day,
	outQuantity int,
) (*DailyRecord, error) {
	if err := errors.Join(
		packerID.Validate(),
		deliveryStaffID.Validate(),
		warehouseID.Validate(),
		productID.Validate(),
		dealerID.Validate(),
		day.Validate(),
	); err != nil {
		return nil, err
	}

	if outQuantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("outQuantity",
			fmt.Errorf("%d is not greater than 0", outQuantity))
	}

	return &DailyRecord{
		packerID:        packerID,
		deliveryStaffID: deliveryStaffID,
		warehouseID:     warehouseID,
		productID:       productID,
		dealerID:        dealerID,
		day:             day,
		outQuantity:     outQuantity,
		isConstructed:   true,
	}, nil
}

// RestoreDailyRecord reconstructs a record from persistence.
func RestoreDailyRecord(
	packerID kernel.UUID,
	deliveryStaffID kernel.UUID,
	warehouseID kernel.UUID,
	productID kernel.UUID,
	dealerID kernel.UUID,
	day kernel.Day,
	outQuantity int,
	sellQuantity int,
	isReturned bool,
) (*DailyRecord, error) {
	if err := errors.Join(
		packerID.Validate(),
		deliveryStaffID.Validate(),
		warehouseID.Validate(),
		productID.Validate(),
		dealerID.Validate(),
		day.Validate(),
	); err != nil {
		return nil, err
	}

	if outQuantity < 0 || sellQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("quantities must not be negative (out=%d, sell=%d)", outQuantity, sellQuantity))
	}

	return &DailyRecord{
		packerID:        packerID,
		deliveryStaffID: deliveryStaffID,
		warehouseID:     warehouseID,
		productID:       productID,
		dealerID:        dealerID,
		day:             day,
		outQuantity:     outQuantity,
		sellQuantity:    sellQuantity,
		isReturned:      isReturned,
		isConstructed:   true,
	}, nil
}

// Validate ensures the record was created through a constructor.
func (r *DailyRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrDailyRecordIsNotConstructed
	}
	return nil
}

// PackerID returns the packer reference.
func (r *DailyRecord) PackerID() kernel.UUID { return r.packerID }

// DeliveryStaffID returns the delivery staff the stock was handed to.
func (r *DailyRecord) DeliveryStaffID() kernel.UUID { return r.deliveryStaffID }

// WarehouseID returns the warehouse reference.
func (r *DailyRecord) WarehouseID() kernel.UUID { return r.warehouseID }

// ProductID returns the product reference.
func (r *DailyRecord) ProductID() kernel.UUID { return r.productID }

// DealerID returns the dealer reference.
func (r *DailyRecord) DealerID() kernel.UUID { return r.dealerID }

// Day returns the allocation day bucket.
func (r *DailyRecord) Day() kernel.Day { return r.day }

// OutQuantity returns the quantity packed out for the day.
func (r *DailyRecord) OutQuantity() int { return r.outQuantity }

// SellQuantity returns the quantity sold so far that day.
func (r *DailyRecord) SellQuantity() int { return r.sellQuantity }

// IsReturned reports whether the unsold remainder was returned.
func (r *DailyRecord) IsReturned() bool { return r.isReturned }

// ApplyPackOut updates the day's out quantity under the given mode and
// returns the ledger delta the caller must reconcile: positive means
// consume that much from the stock ledger, negative means restock.
func (r *DailyRecord) ApplyPackOut(mode Mode, outQuantity int) (int, error) {
	if err := mode.Validate(); err != nil {
		return 0, err
	}

	if outQuantity <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("outQuantity",
			fmt.Errorf("%d is not greater than 0", outQuantity))
	}

	if r.isReturned {
		return 0, ErrAlreadyReturned
	}

	switch mode {
	case ModeReplace:
		delta := outQuantity - r.outQuantity
		r.outQuantity = outQuantity
		return delta, nil
	default: // ModeAccumulate
		r.outQuantity += outQuantity
		return outQuantity, nil
	}
}

// AddSale increments the day's sell quantity by a sell delta coming from a
// delivery or a baki continuation. Negative deltas (a corrected delivery)
// are accepted as long as the running total stays non-negative.
func (r *DailyRecord) AddSale(delta int) error {
	if r.sellQuantity+delta < 0 {
		return errs.NewValueIsInvalidErrorWithCause("sellQuantity",
			fmt.Errorf("sell delta %d would make the day's total negative", delta))
	}

	r.sellQuantity += delta
	return nil
}

// MarkReturned flags the record as returned and yields the unsold remainder
// (outQuantity - sellQuantity) the caller must restock into the ledger.
func (r *DailyRecord) MarkReturned() (int, error) {
	if r.isReturned {
		return 0, ErrAlreadyReturned
	}

	r.isReturned = true
	remainder := r.outQuantity - r.sellQuantity
	if remainder < 0 {
		remainder = 0
	}
	return remainder, nil
}
