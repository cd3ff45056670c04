package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
)

// GetCollectionWorklistQueryHandler reads the day's collection worklist by
// joining interested care tickets with their pending or baki orders.
type GetCollectionWorklistQueryHandler struct {
	db *gorm.DB
}

// NewGetCollectionWorklistQueryHandler creates a handler for the daily
// collection worklist.
func NewGetCollectionWorklistQueryHandler(db *gorm.DB) GetCollectionWorklistQueryHandler {
	return GetCollectionWorklistQueryHandler{db: db}
}

// Handle executes the worklist query for the requested day, ordered by
// delivery staff so each staff's run comes out contiguous.
func (h GetCollectionWorklistQueryHandler) Handle(
	ctx context.Context,
	query GetCollectionWorklistQuery,
) ([]WorklistEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.business_id,
			o.status,
			t.request_type,
			o.retailer_id,
			t.delivery_staff_id,
			o.collection_amount,
			o.collected_amount,
			t.reason
		FROM care_tickets t
		JOIN orders o ON o.id = t.order_id
		WHERE t.status = ?
		  AND t.request_date = ?
		  AND o.status IN (?, ?)
		ORDER BY t.delivery_staff_id, o.business_id
	`,
		carecase.TicketStatusInterest.String(),
		query.Day().Time(),
		order.StatusPending.String(),
		order.StatusBaki.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]WorklistEntry, 0)
	for rows.Next() {
		var entry WorklistEntry
		var orderID, retailerID, staffID uuid.UUID

		err = rows.Scan(
			&orderID,
			&entry.BusinessID,
			&entry.OrderStatus,
			&entry.RequestType,
			&retailerID,
			&staffID,
			&entry.CollectionAmount,
			&entry.CollectedAmount,
			&entry.Reason,
		)
		if err != nil {
			return nil, err
		}

		entry.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}

		entry.RetailerID, err = kernel.UUIDFromBytes(retailerID[:])
		if err != nil {
			return nil, err
		}

		entry.DeliveryStaffID, err = kernel.UUIDFromBytes(staffID[:])
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
