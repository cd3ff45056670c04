package masterdata

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The master-data tables are maintained by back-office tooling outside this
// service; the models below exist for schema migration and test seeding.

// RetailerDTO is one row of the retailers table.
type RetailerDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"uniqueIndex;size:32"`
	Name string
}

// TableName overrides GORM's default naming to use "retailers".
func (RetailerDTO) TableName() string { return "retailers" }

// DealerDTO is one row of the dealers table.
type DealerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code          string    `gorm:"uniqueIndex;size:32"`
	Name          string
	CommissionPct decimal.Decimal `gorm:"type:numeric(5,2)"`
}

// TableName overrides GORM's default naming to use "dealers".
func (DealerDTO) TableName() string { return "dealers" }

// AgentDTO is one row of the agents table.
type AgentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code          string    `gorm:"uniqueIndex;size:32"`
	Name          string
	CommissionPct decimal.Decimal `gorm:"type:numeric(5,2)"`
}

// TableName overrides GORM's default naming to use "agents".
func (AgentDTO) TableName() string { return "agents" }

// DeliveryStaffDTO is one row of the delivery_staff table.
type DeliveryStaffDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"uniqueIndex;size:32"`
	Name string
}

// TableName overrides GORM's default naming to use "delivery_staff".
func (DeliveryStaffDTO) TableName() string { return "delivery_staff" }

// PackerDTO is one row of the packers table.
type PackerDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"uniqueIndex;size:32"`
	Name string
}

// TableName overrides GORM's default naming to use "packers".
func (PackerDTO) TableName() string { return "packers" }

// WarehouseDTO is one row of the warehouses table.
type WarehouseDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"uniqueIndex;size:32"`
	Name string
}

// TableName overrides GORM's default naming to use "warehouses".
func (WarehouseDTO) TableName() string { return "warehouses" }

// AreaDTO is one row of the areas table.
type AreaDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"uniqueIndex;size:32"`
	Name string
}

// TableName overrides GORM's default naming to use "areas".
func (AreaDTO) TableName() string { return "areas" }

// ProductDTO is one row of the products table.
type ProductDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code               string    `gorm:"uniqueIndex;size:32"`
	Name               string
	Price              decimal.Decimal `gorm:"type:numeric(14,2)"`
	QuantityPerPackage int
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string { return "products" }
