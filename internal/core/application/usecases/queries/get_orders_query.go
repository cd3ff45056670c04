// Package queries implements the read side: list and report handlers that
// bypass the aggregates and read the persistence model directly.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/guard"
	"distribution/internal/pkg/paging"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders filtered by status, delivery staff and
// creation day, with paging metadata. All filters are optional.
type GetOrdersQuery struct {
	status          *order.Status
	deliveryStaffID *kernel.UUID
	day             *kernel.Day
	page            paging.Request

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders. Pass nil for any
// filter to leave it open.
func NewGetOrdersQuery(
	status *order.Status,
	deliveryStaffID *kernel.UUID,
	day *kernel.Day,
	page paging.Request,
) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if deliveryStaffID != nil {
		if err := deliveryStaffID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if day != nil {
		if err := day.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status:          status,
		deliveryStaffID: deliveryStaffID,
		day:             day,
		page:            page,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// DeliveryStaffID returns the optional delivery staff filter.
func (q GetOrdersQuery) DeliveryStaffID() *kernel.UUID {
	return q.deliveryStaffID
}

// Day returns the optional creation day filter.
func (q GetOrdersQuery) Day() *kernel.Day {
	return q.day
}

// Page returns the page request.
func (q GetOrdersQuery) Page() paging.Request {
	return q.page
}

// OrderView is one row of the order list.
type OrderView struct {
	ID               kernel.UUID
	BusinessID       string
	Status           string
	PaymentStatus    string
	RetailerID       kernel.UUID
	DeliveryStaffID  *kernel.UUID
	CollectionAmount decimal.Decimal
	CollectedAmount  decimal.Decimal
	CreatedAt        time.Time
}

// GetOrdersQueryResponse carries one page of the order list.
type GetOrdersQueryResponse struct {
	Orders []OrderView
	Meta   paging.Meta
}
