package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

// ShipmentUseCase dispatch of packages for orders. Shipping cost is quoted
// from the carrier's rates at creation time; the tracking number carries the
// carrier's prefix.
type ShipmentUseCase struct {
	shipments  repository.ShipmentRepository
	orders     repository.OrderRepository
	warehouses repository.WarehouseRepository
	carriers   repository.CarrierRepository
}

// NewShipmentUseCase builds the use case.
func NewShipmentUseCase(
	shipments repository.ShipmentRepository,
	orders repository.OrderRepository,
	warehouses repository.WarehouseRepository,
	carriers repository.CarrierRepository,
) *ShipmentUseCase {
	return &ShipmentUseCase{
		shipments:  shipments,
		orders:     orders,
		warehouses: warehouses,
		carriers:   carriers,
	}
}

// Create dispatches a shipment: validates the order, origin warehouse and
// carrier, prices the shipment from the carrier's rates and assigns a
// tracking number.
func (uc *ShipmentUseCase) Create(in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	if in.OrderID == "" || in.WarehouseID == "" || in.CarrierID == "" || in.Weight < 0 {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order: %w", domain.ErrNotFound)
	}
	warehouse, err := uc.warehouses.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, fmt.Errorf("warehouse: %w", domain.ErrNotFound)
	}
	carrier, err := uc.carriers.GetByID(in.CarrierID)
	if err != nil {
		return nil, err
	}
	if carrier == nil {
		return nil, fmt.Errorf("carrier: %w", domain.ErrNotFound)
	}

	now := time.Now()
	eta := now.AddDate(0, 0, carrier.EstimatedDays)
	shipment := &entity.Shipment{
		ID:                    uuid.New().String(),
		OrderID:               in.OrderID,
		WarehouseID:           in.WarehouseID,
		CarrierID:             in.CarrierID,
		TrackingNumber:        newTrackingNumber(carrier.Name),
		Status:                entity.ShipmentStatusPending,
		Weight:                in.Weight,
		Dimensions:            in.Dimensions,
		ShippingCost:          carrier.EstimateCost(decimal.NewFromFloat(in.Weight)),
		EstimatedDeliveryDate: &eta,
		CreatedAt:             now,
		UpdatedAt:             now,
		Carrier:               carrier,
		Warehouse:             warehouse,
	}
	if err := uc.shipments.Create(shipment); err != nil {
		return nil, err
	}
	return toShipmentResponse(shipment), nil
}

// GetByID fetches one shipment with its carrier and origin, (nil, nil) when absent.
func (uc *ShipmentUseCase) GetByID(id string) (*dto.ShipmentResponse, error) {
	shipment, err := uc.shipments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, nil
	}
	return toShipmentResponse(shipment), nil
}

// ListByOrder returns every shipment dispatched for an order.
func (uc *ShipmentUseCase) ListByOrder(orderID string) (*dto.ShipmentListResponse, error) {
	list, err := uc.shipments.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	return toShipmentListResponse(list), nil
}

// ListRecent returns the latest shipments across all orders, newest first.
func (uc *ShipmentUseCase) ListRecent(limit int) (*dto.ShipmentListResponse, error) {
	if limit <= 0 {
		limit = entity.DefaultPageSize
	}
	list, err := uc.shipments.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return toShipmentListResponse(list), nil
}

// newTrackingNumber formats a carrier-prefixed tracking number with a random
// 10-digit suffix, e.g. "1Z4821937465" for UPS.
func newTrackingNumber(carrierName string) string {
	prefix := "TK"
	switch name := strings.ToLower(carrierName); {
	case strings.Contains(name, "ups"):
		prefix = "1Z"
	case strings.Contains(name, "fedex"):
		prefix = "FX"
	case strings.Contains(name, "dhl"):
		prefix = "DH"
	}
	return fmt.Sprintf("%s%010d", prefix, rand.Int63n(10_000_000_000))
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	out := &dto.ShipmentResponse{
		ID:                    s.ID,
		OrderID:               s.OrderID,
		TrackingNumber:        s.TrackingNumber,
		Status:                s.Status,
		Weight:                s.Weight,
		ShippingCost:          s.ShippingCost,
		LabelURL:              s.LabelURL,
		EstimatedDeliveryDate: s.EstimatedDeliveryDate,
		ActualDeliveryDate:    s.ActualDeliveryDate,
		CreatedAt:             s.CreatedAt,
	}
	if s.Carrier != nil {
		out.Carrier = toCarrierResponse(s.Carrier)
	}
	if s.Warehouse != nil {
		out.WarehouseName = s.Warehouse.Name
	}
	return out
}

func toShipmentListResponse(list []*entity.Shipment) *dto.ShipmentListResponse {
	items := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShipmentResponse(s))
	}
	return &dto.ShipmentListResponse{Items: items}
}
