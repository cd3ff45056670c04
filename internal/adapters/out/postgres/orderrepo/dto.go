// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Optional actor references stay NULL until the corresponding lifecycle step
// stamps them.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID string    `gorm:"uniqueIndex;size:64"`

	RetailerID      uuid.UUID  `gorm:"type:uuid;index"`
	AreaID          uuid.UUID  `gorm:"type:uuid;index"`
	DealerID        uuid.UUID  `gorm:"type:uuid;index"`
	AgentID         *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryStaffID *uuid.UUID `gorm:"type:uuid;index"`
	PackerID        *uuid.UUID `gorm:"type:uuid"`

	Status        string `gorm:"size:16;index"`
	PaymentStatus string `gorm:"size:16;index"`

	CollectionAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	CollectedAmount  decimal.Decimal `gorm:"type:numeric(14,2)"`

	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one product line of a persisted order.
type OrderLineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Quantity           int
	QuantityPerPackage int

	Price             decimal.Decimal `gorm:"type:numeric(14,2)"`
	DealerPrice       decimal.Decimal `gorm:"type:numeric(14,2)"`
	AgentPrice        decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(14,2)"`
	DealerTotalAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	AgentTotalAmount  decimal.Decimal `gorm:"type:numeric(14,2)"`

	SoldQuantity int

	Cancelled    bool
	CancelledAt  *time.Time
	CancelReason string
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	refs := aggregate.References()

	dto := OrderDTO{
		ID:               aggregate.ID().Bytes(),
		BusinessID:       aggregate.BusinessID(),
		RetailerID:       refs.RetailerID.Bytes(),
		AreaID:           refs.AreaID.Bytes(),
		DealerID:         refs.DealerID.Bytes(),
		AgentID:          optionalUUID(refs.AgentID),
		DeliveryStaffID:  optionalUUID(refs.DeliveryStaffID),
		PackerID:         optionalUUID(refs.PackerID),
		Status:           aggregate.Status().String(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		CollectionAmount: aggregate.CollectionAmount(),
		CollectedAmount:  aggregate.CollectedAmount(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CancelledAt:      aggregate.CancelledAt(),
		CancelReason:     aggregate.CancelReason(),
	}

	dto.Lines = make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, lineFromDomain(aggregate.ID(), line))
	}

	return dto
}

func lineFromDomain(orderID kernel.UUID, line *order.LineItem) OrderLineDTO {
	prices := line.Prices()
	return OrderLineDTO{
		OrderID:            orderID.Bytes(),
		ProductID:          line.ProductID().Bytes(),
		Quantity:           line.Quantity(),
		QuantityPerPackage: line.QuantityPerPackage(),
		Price:              prices.Price,
		DealerPrice:        prices.DealerPrice,
		AgentPrice:         prices.AgentPrice,
		TotalAmount:        prices.TotalAmount,
		DealerTotalAmount:  prices.DealerTotalAmount,
		AgentTotalAmount:   prices.AgentTotalAmount,
		SoldQuantity:       line.Summary().SoldQuantity,
		Cancelled:          line.IsCancelled(),
		CancelledAt:        line.CancelledAt(),
		CancelReason:       line.CancelReason(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	refs, err := refsToDomain(dto)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.LineItem, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.BusinessID,
		refs,
		lines,
		status,
		paymentStatus,
		dto.CollectionAmount,
		dto.CollectedAmount,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.DeliveredAt,
		dto.CancelledAt,
		dto.CancelReason,
	)
}

func refsToDomain(dto OrderDTO) (order.References, error) {
	retailerID, err := kernel.UUIDFromBytes(dto.RetailerID[:])
	if err != nil {
		return order.References{}, err
	}

	areaID, err := kernel.UUIDFromBytes(dto.AreaID[:])
	if err != nil {
		return order.References{}, err
	}

	dealerID, err := kernel.UUIDFromBytes(dto.DealerID[:])
	if err != nil {
		return order.References{}, err
	}

	agentID, err := optionalUUIDToDomain(dto.AgentID)
	if err != nil {
		return order.References{}, err
	}

	staffID, err := optionalUUIDToDomain(dto.DeliveryStaffID)
	if err != nil {
		return order.References{}, err
	}

	packerID, err := optionalUUIDToDomain(dto.PackerID)
	if err != nil {
		return order.References{}, err
	}

	return order.References{
		RetailerID:      retailerID,
		AreaID:          areaID,
		DealerID:        dealerID,
		AgentID:         agentID,
		DeliveryStaffID: staffID,
		PackerID:        packerID,
	}, nil
}

func lineToDomain(dto OrderLineDTO) (*order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(
		productID,
		dto.Quantity,
		dto.QuantityPerPackage,
		order.LinePrices{
			Price:             dto.Price,
			DealerPrice:       dto.DealerPrice,
			AgentPrice:        dto.AgentPrice,
			TotalAmount:       dto.TotalAmount,
			DealerTotalAmount: dto.DealerTotalAmount,
			AgentTotalAmount:  dto.AgentTotalAmount,
		},
		order.QuantitySummary{
			OrderedQuantity: dto.Quantity,
			SoldQuantity:    dto.SoldQuantity,
		},
		dto.Cancelled,
		dto.CancelledAt,
		dto.CancelReason,
	)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUIDToDomain(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
