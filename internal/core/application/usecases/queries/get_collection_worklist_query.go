package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var ErrGetCollectionWorklistQueryIsNotConstructed = errors.New(
	"GetCollectionWorklistQuery must be created via NewGetCollectionWorklistQuery constructor",
)

// GetCollectionWorklistQuery builds the day's collection run: every
// pending or baki order whose care ticket was resolved with interest and a
// request date on the given day.
type GetCollectionWorklistQuery struct {
	day kernel.Day

	guard guard.ConstructorGuard
}

// NewGetCollectionWorklistQuery creates a worklist query for one day.
func NewGetCollectionWorklistQuery(day kernel.Day) (GetCollectionWorklistQuery, error) {
	if err := day.Validate(); err != nil {
		return GetCollectionWorklistQuery{}, err
	}

	return GetCollectionWorklistQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCollectionWorklistQuery) Validate() error {
	return q.guard.Validate(ErrGetCollectionWorklistQueryIsNotConstructed)
}

// Day returns the worklist day.
func (q GetCollectionWorklistQuery) Day() kernel.Day {
	return q.day
}

// WorklistEntry is one order due for collection on the worklist day.
type WorklistEntry struct {
	OrderID          kernel.UUID
	BusinessID       string
	OrderStatus      string
	RequestType      string
	RetailerID       kernel.UUID
	DeliveryStaffID  kernel.UUID
	CollectionAmount decimal.Decimal
	CollectedAmount  decimal.Decimal
	Reason           string
}
