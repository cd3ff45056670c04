// Package masterdata implements the read-only Directory port over the
// master-data lookup tables. One table per party kind plus the product
// catalog; all lookups share the same row shapes.
package masterdata

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"
)

// GormDirectory resolves internal references against the master-data
// tables. It is read-only and not bound to a unit of work.
type GormDirectory struct {
	db *gorm.DB
}

// NewGormDirectory creates a directory over the given database.
func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

type partyRow struct {
	ID   uuid.UUID
	Code string
	Name string
}

type commissionRow struct {
	partyRow      `gorm:"embedded"`
	CommissionPct decimal.Decimal
}

type productRow struct {
	ID                 uuid.UUID
	Code               string
	Name               string
	Price              decimal.Decimal
	QuantityPerPackage int
}

// Retailer resolves a retailer reference.
func (d *GormDirectory) Retailer(ctx context.Context, id kernel.UUID) (ports.PartyInfo, error) {
	return d.party(ctx, "retailers", "retailer", id)
}

// Dealer resolves a dealer reference with its commission percentage.
func (d *GormDirectory) Dealer(ctx context.Context, id kernel.UUID) (ports.DealerInfo, error) {
	row, err := d.commission(ctx, "dealers", "dealer", id)
	if err != nil {
		return ports.DealerInfo{}, err
	}

	info, err := partyToInfo(row.partyRow)
	if err != nil {
		return ports.DealerInfo{}, err
	}

	return ports.DealerInfo{PartyInfo: info, CommissionPct: row.CommissionPct}, nil
}

// Agent resolves a sales agent reference with its commission percentage.
func (d *GormDirectory) Agent(ctx context.Context, id kernel.UUID) (ports.AgentInfo, error) {
	row, err := d.commission(ctx, "agents", "agent", id)
	if err != nil {
		return ports.AgentInfo{}, err
	}

	info, err := partyToInfo(row.partyRow)
	if err != nil {
		return ports.AgentInfo{}, err
	}

	return ports.AgentInfo{PartyInfo: info, CommissionPct: row.CommissionPct}, nil
}

// DeliveryStaff resolves a delivery staff reference.
func (d *GormDirectory) DeliveryStaff(ctx context.Context, id kernel.UUID) (ports.PartyInfo, error) {
	return d.party(ctx, "delivery_staff", "deliveryStaff", id)
}

// Packer resolves a packer reference.
func (d *GormDirectory) Packer(ctx context.Context, id kernel.UUID) (ports.PartyInfo, error) {
	return d.party(ctx, "packers", "packer", id)
}

// Product resolves a product reference with its pricing master data.
func (d *GormDirectory) Product(ctx context.Context, id kernel.UUID) (ports.ProductInfo, error) {
	if err := id.Validate(); err != nil {
		return ports.ProductInfo{}, err
	}

	var row productRow
	err := d.db.WithContext(ctx).
		Table("products").
		Where("id = ?", id.Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ProductInfo{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return ports.ProductInfo{}, err
	}

	productID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return ports.ProductInfo{}, err
	}

	return ports.ProductInfo{
		ID:                 productID,
		Code:               row.Code,
		Name:               row.Name,
		Price:              row.Price,
		QuantityPerPackage: row.QuantityPerPackage,
	}, nil
}

// Warehouse resolves a warehouse reference.
func (d *GormDirectory) Warehouse(ctx context.Context, id kernel.UUID) (ports.PartyInfo, error) {
	return d.party(ctx, "warehouses", "warehouse", id)
}

// Area resolves a delivery area reference.
func (d *GormDirectory) Area(ctx context.Context, id kernel.UUID) (ports.PartyInfo, error) {
	return d.party(ctx, "areas", "area", id)
}

func (d *GormDirectory) party(ctx context.Context, table, param string, id kernel.UUID) (ports.PartyInfo, error) {
	if err := id.Validate(); err != nil {
		return ports.PartyInfo{}, err
	}

	var row partyRow
	err := d.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id.Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PartyInfo{}, errs.NewObjectNotFoundError(param, id.String())
		}
		return ports.PartyInfo{}, err
	}

	return partyToInfo(row)
}

func (d *GormDirectory) commission(ctx context.Context, table, param string, id kernel.UUID) (commissionRow, error) {
	if err := id.Validate(); err != nil {
		return commissionRow{}, err
	}

	var row commissionRow
	err := d.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id.Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return commissionRow{}, errs.NewObjectNotFoundError(param, id.String())
		}
		return commissionRow{}, err
	}

	return row, nil
}

func partyToInfo(row partyRow) (ports.PartyInfo, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return ports.PartyInfo{}, err
	}

	return ports.PartyInfo{ID: id, Code: row.Code, Name: row.Name}, nil
}
