package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"distribution/internal/core/domain/model/kernel"
)

// GetOrdersQueryHandler lists orders from the database with optional
// filters and paging. Reads the persistence model directly instead of
// rehydrating aggregates.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for the order list.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the list query. Results are sorted per the page request,
// newest first by default.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 3)

	if status := query.Status(); status != nil {
		where += " AND status = ?"
		args = append(args, status.String())
	}

	if staffID := query.DeliveryStaffID(); staffID != nil {
		where += " AND delivery_staff_id = ?"
		args = append(args, staffID.Bytes())
	}

	if day := query.Day(); day != nil {
		where += " AND created_at >= ? AND created_at < ?"
		args = append(args, day.Time(), day.Time().AddDate(0, 0, 1))
	}

	var totalDoc int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&totalDoc).Error
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	page := query.Page()
	orderBy := page.Sort
	if orderBy == "" {
		orderBy = "created_at DESC"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			business_id,
			status,
			payment_status,
			retailer_id,
			delivery_staff_id,
			collection_amount,
			collected_amount,
			created_at
		FROM orders
		WHERE `+where+`
		ORDER BY `+orderBy+`
		LIMIT ? OFFSET ?
	`, append(args, page.Limit, page.Offset())...).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0, page.Limit)
	for rows.Next() {
		var view OrderView
		var id uuid.UUID
		var retailerID uuid.UUID
		var staffID *uuid.UUID

		err = rows.Scan(
			&id,
			&view.BusinessID,
			&view.Status,
			&view.PaymentStatus,
			&retailerID,
			&staffID,
			&view.CollectionAmount,
			&view.CollectedAmount,
			&view.CreatedAt,
		)
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}

		view.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}

		view.RetailerID, err = kernel.UUIDFromBytes(retailerID[:])
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}

		if staffID != nil {
			resolved, staffErr := kernel.UUIDFromBytes((*staffID)[:])
			if staffErr != nil {
				return GetOrdersQueryResponse{}, staffErr
			}
			view.DeliveryStaffID = &resolved
		}

		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return GetOrdersQueryResponse{
		Orders: orders,
		Meta:   page.MetaFor(totalDoc),
	}, nil
}
