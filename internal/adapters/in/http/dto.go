package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type lineSpecRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	ID            string            `json:"id"`
	RetailerID    string            `json:"retailerId"`
	AreaID        string            `json:"areaId"`
	DealerID      string            `json:"dealerId"`
	AgentID       string            `json:"agentId"`
	Lines         []lineSpecRequest `json:"lines"`
	InitialStatus *string           `json:"initialStatus,omitempty"`
}

type createReadyOrderRequest struct {
	ID              string            `json:"id"`
	RetailerID      string            `json:"retailerId"`
	AreaID          string            `json:"areaId"`
	DealerID        string            `json:"dealerId"`
	AgentID         *string           `json:"agentId,omitempty"`
	WarehouseID     string            `json:"warehouseId"`
	Lines           []lineSpecRequest `json:"lines"`
	CollectedAmount decimal.Decimal   `json:"collectedAmount"`
	SoldAt          time.Time         `json:"soldAt"`
}

type dispatchOrdersRequest struct {
	OrderIDs        []string `json:"orderIds"`
	DeliveryStaffID string   `json:"deliveryStaffId"`
}

type updateOrderLineRequest struct {
	Quantity   int              `json:"quantity"`
	AgentPrice *decimal.Decimal `json:"agentPrice,omitempty"`
}

type cancelOrderRequest struct {
	WarehouseID string `json:"warehouseId"`
	Reason      string `json:"reason"`
}

type deliverOrderRequest struct {
	CollectionAmount    decimal.Decimal `json:"collectionAmount"`
	CollectedAmount     decimal.Decimal `json:"collectedAmount"`
	DeliveredQuantities map[string]int  `json:"deliveredQuantities"`
}

type continueBakiOrderRequest struct {
	CollectedDelta      decimal.Decimal `json:"collectedDelta"`
	DeliveredQuantities map[string]int  `json:"deliveredQuantities,omitempty"`
}

type recordPickupRequest struct {
	DealerID    string          `json:"dealerId"`
	WarehouseID string          `json:"warehouseId"`
	ProductID   string          `json:"productId"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type recordPackOutRequest struct {
	WarehouseID     string `json:"warehouseId"`
	ProductID       string `json:"productId"`
	DeliveryStaffID string `json:"deliveryStaffId"`
	DealerID        string `json:"dealerId"`
	Day             string `json:"day"`
	OutQuantity     int    `json:"outQuantity"`
	Mode            string `json:"mode"`
}

type markReturnedRequest struct {
	WarehouseID string `json:"warehouseId"`
	ProductID   string `json:"productId"`
	PackerID    string `json:"packerId"`
	Day         string `json:"day"`
}

type fileCareRequestRequest struct {
	OrderID         string `json:"orderId"`
	DeliveryStaffID string `json:"deliveryStaffId"`
	RequestType     string `json:"requestType"`
	Reason          string `json:"reason,omitempty"`
}

type resolveCareRequestRequest struct {
	Resolution  string  `json:"resolution"`
	Reason      string  `json:"reason,omitempty"`
	RequestDate *string `json:"requestDate,omitempty"`
	WarehouseID *string `json:"warehouseId,omitempty"`
}

type orderViewResponse struct {
	ID               string          `json:"id"`
	BusinessID       string          `json:"businessId"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"paymentStatus"`
	RetailerID       string          `json:"retailerId"`
	DeliveryStaffID  *string         `json:"deliveryStaffId,omitempty"`
	CollectionAmount decimal.Decimal `json:"collectionAmount"`
	CollectedAmount  decimal.Decimal `json:"collectedAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type pagingMetaResponse struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	TotalPage int   `json:"totalPage"`
	TotalDoc  int64 `json:"totalDoc"`
}

type orderListResponse struct {
	Orders []orderViewResponse `json:"orders"`
	Meta   pagingMetaResponse  `json:"meta"`
}

type worklistEntryResponse struct {
	OrderID          string          `json:"orderId"`
	BusinessID       string          `json:"businessId"`
	OrderStatus      string          `json:"orderStatus"`
	RequestType      string          `json:"requestType"`
	RetailerID       string          `json:"retailerId"`
	DeliveryStaffID  string          `json:"deliveryStaffId"`
	CollectionAmount decimal.Decimal `json:"collectionAmount"`
	CollectedAmount  decimal.Decimal `json:"collectedAmount"`
	Reason           string          `json:"reason,omitempty"`
}

type stockLevelResponse struct {
	WarehouseID string          `json:"warehouseId"`
	ProductID   string          `json:"productId"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}
