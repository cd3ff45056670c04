// Package carerepo persists customer-care tickets. A unique index on the
// order reference enforces the single-ticket-per-order binding in storage.
package carerepo

import (
	"time"

	"github.com/google/uuid"

	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/core/domain/model/kernel"
)

// TicketDTO is one persisted customer-care ticket.
type TicketDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	RetailerID      uuid.UUID `gorm:"type:uuid;index"`
	DeliveryStaffID uuid.UUID `gorm:"type:uuid;index"`

	RequestType string `gorm:"size:16"`
	Status      string `gorm:"size:16;index"`
	Reason      string

	RequestDate *time.Time `gorm:"type:date;index"`
	FiledAt     time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming to use "care_tickets".
func (TicketDTO) TableName() string {
	return "care_tickets"
}

func fromDomain(ticket *carecase.Ticket) TicketDTO {
	var requestDate *time.Time
	if day := ticket.RequestDate(); day != nil {
		t := day.Time()
		requestDate = &t
	}

	return TicketDTO{
		ID:              ticket.ID().Bytes(),
		OrderID:         ticket.OrderID().Bytes(),
		RetailerID:      ticket.RetailerID().Bytes(),
		DeliveryStaffID: ticket.DeliveryStaffID().Bytes(),
		RequestType:     ticket.RequestType().String(),
		Status:          ticket.Status().String(),
		Reason:          ticket.Reason(),
		RequestDate:     requestDate,
		FiledAt:         ticket.FiledAt(),
		UpdatedAt:       ticket.UpdatedAt(),
	}
}

func toDomain(dto TicketDTO) (*carecase.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	retailerID, err := kernel.UUIDFromBytes(dto.RetailerID[:])
	if err != nil {
		return nil, err
	}

	staffID, err := kernel.UUIDFromBytes(dto.DeliveryStaffID[:])
	if err != nil {
		return nil, err
	}

	requestType, err := carecase.RequestTypeFromString(dto.RequestType)
	if err != nil {
		return nil, err
	}

	status, err := carecase.TicketStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var requestDate *kernel.Day
	if dto.RequestDate != nil {
		day := kernel.DayOf(*dto.RequestDate)
		requestDate = &day
	}

	return carecase.RestoreTicket(
		id,
		orderID,
		retailerID,
		staffID,
		requestType,
		status,
		dto.Reason,
		requestDate,
		dto.FiledAt,
		dto.UpdatedAt,
	)
}
