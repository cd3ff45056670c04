package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"distribution/internal/core/domain/model/kernel"
)

// PartyInfo is a master-data reference resolved by the Directory.
type PartyInfo struct {
	ID   kernel.UUID
	Code string
	Name string
}

// DealerInfo extends PartyInfo with the dealer's commission percentage
// applied when deriving dealer prices.
type DealerInfo struct {
	PartyInfo
	CommissionPct decimal.Decimal
}

// AgentInfo extends PartyInfo with the agent's commission percentage
// applied when deriving agent prices.
type AgentInfo struct {
	PartyInfo
	CommissionPct decimal.Decimal
}

// ProductInfo is the product master data needed to price an order line.
type ProductInfo struct {
	ID                 kernel.UUID
	Code               string
	Name               string
	Price              decimal.Decimal
	QuantityPerPackage int
}

// Directory resolves internal references against the master-data tables.
// All lookups return ObjectNotFound when the reference is absent. The
// directory is read-only and not bound to a unit of work.
type Directory interface {
	Retailer(ctx context.Context, id kernel.UUID) (PartyInfo, error)
	Dealer(ctx context.Context, id kernel.UUID) (DealerInfo, error)
	Agent(ctx context.Context, id kernel.UUID) (AgentInfo, error)
	DeliveryStaff(ctx context.Context, id kernel.UUID) (PartyInfo, error)
	Packer(ctx context.Context, id kernel.UUID) (PartyInfo, error)
	Product(ctx context.Context, id kernel.UUID) (ProductInfo, error)
	Warehouse(ctx context.Context, id kernel.UUID) (PartyInfo, error)
	Area(ctx context.Context, id kernel.UUID) (PartyInfo, error)
}
