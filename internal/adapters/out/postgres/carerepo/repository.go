package carerepo

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"distribution/internal/core/domain/model/carecase"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// GormCareRepository implements CareRepository using GORM.
type GormCareRepository struct {
	db *gorm.DB
}

// NewGormCareRepository creates a new GORM care repository.
func NewGormCareRepository(db *gorm.DB) *GormCareRepository {
	return &GormCareRepository{db: db}
}

// Add persists a new ticket. A second ticket for the same order hits the
// unique index on the order reference and is reported as
// ObjectAlreadyExists.
func (r *GormCareRepository) Add(ctx context.Context, ticket *carecase.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return err
	}

	dto := fromDomain(ticket)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("careTicket", ticket.OrderID().String(), err)
		}
		return err
	}

	return nil
}

// Update persists changes to an existing ticket.
func (r *GormCareRepository) Update(ctx context.Context, ticket *carecase.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return err
	}

	dto := fromDomain(ticket)
	result := r.db.WithContext(ctx).
		Model(&TicketDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("careTicket", ticket.ID().String())
	}

	return nil
}

// Get retrieves a ticket by its unique identifier.
func (r *GormCareRepository) Get(ctx context.Context, id kernel.UUID) (*carecase.Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("careTicket", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the single ticket bound to an order.
func (r *GormCareRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*carecase.Ticket, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("careTicket", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
