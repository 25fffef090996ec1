package usecase_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/application/usecase"
	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

type fakeShipmentRepo struct {
	byID map[string]*entity.Shipment
}

func (f *fakeShipmentRepo) Create(s *entity.Shipment) error { f.byID[s.ID] = s; return nil }
func (f *fakeShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	return f.byID[id], nil
}
func (f *fakeShipmentRepo) ListByOrder(orderID string) ([]*entity.Shipment, error) {
	var out []*entity.Shipment
	for _, s := range f.byID {
		if s.OrderID == orderID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeShipmentRepo) ListRecent(limit int) ([]*entity.Shipment, error) {
	var out []*entity.Shipment
	for _, s := range f.byID {
		if len(out) == limit {
			break
		}
		out = append(out, s)
	}
	return out, nil
}

func newShipmentUC(carrier *entity.Carrier) (*usecase.ShipmentUseCase, *fakeShipmentRepo) {
	shipments := &fakeShipmentRepo{byID: map[string]*entity.Shipment{}}
	orders := &fakeOrderRepo{byID: map[string]*entity.Order{
		"ord-1": {ID: "ord-1", OrderNumber: "ORD-202508-000001",
			Customer: &entity.Customer{ID: "cust-1", Name: "Acme Retail Group"}},
	}}
	warehouses := &fakeWarehouseRepo{byID: map[string]*entity.Warehouse{
		warehouseChicago: {ID: warehouseChicago, Name: "Chicago DC"},
	}}
	carriers := &fakeCarrierRepo{byID: map[string]*entity.Carrier{carrier.ID: carrier}}
	return usecase.NewShipmentUseCase(shipments, orders, warehouses, carriers), shipments
}

func TestShipmentCreate_QuotesCostAndSchedulesDelivery(t *testing.T) {
	uc, shipments := newShipmentUC(fedexGround())

	out, err := uc.Create(dto.CreateShipmentRequest{
		OrderID:     "ord-1",
		WarehouseID: warehouseChicago,
		CarrierID:   "car-fedex",
		Weight:      4.0,
		Dimensions:  &entity.Dimensions{Length: 12, Width: 10, Height: 8},
	})
	require.NoError(t, err)

	// 8.50 + 0.75 * 4 = 11.50
	assert.True(t, out.ShippingCost.Equal(decimal.RequireFromString("11.50")),
		"got %s", out.ShippingCost)
	assert.Equal(t, entity.ShipmentStatusPending, out.Status)
	assert.Equal(t, "Chicago DC", out.WarehouseName)
	require.NotNil(t, out.Carrier)
	assert.Equal(t, "FedEx", out.Carrier.Name)

	require.NotNil(t, out.EstimatedDeliveryDate)
	wantETA := time.Now().AddDate(0, 0, 3)
	assert.WithinDuration(t, wantETA, *out.EstimatedDeliveryDate, time.Minute)

	assert.Len(t, shipments.byID, 1)
}

func TestShipmentCreate_TrackingNumberCarriesCarrierPrefix(t *testing.T) {
	cases := []struct {
		carrierName string
		prefix      string
	}{
		{"FedEx", "FX"},
		{"UPS", "1Z"},
		{"DHL", "DH"},
		{"Canada Post", "TK"},
	}
	for _, tc := range cases {
		t.Run(tc.carrierName, func(t *testing.T) {
			carrier := fedexGround()
			carrier.Name = tc.carrierName
			uc, _ := newShipmentUC(carrier)

			out, err := uc.Create(dto.CreateShipmentRequest{
				OrderID:     "ord-1",
				WarehouseID: warehouseChicago,
				CarrierID:   carrier.ID,
				Weight:      1,
			})
			require.NoError(t, err)
			assert.Regexp(t, regexp.MustCompile("^"+tc.prefix+`\d{10}$`), out.TrackingNumber)
		})
	}
}

func TestShipmentCreate_MissingReferences(t *testing.T) {
	uc, _ := newShipmentUC(fedexGround())

	_, err := uc.Create(dto.CreateShipmentRequest{
		OrderID: "ord-missing", WarehouseID: warehouseChicago, CarrierID: "car-fedex", Weight: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "order:")

	_, err = uc.Create(dto.CreateShipmentRequest{
		OrderID: "ord-1", WarehouseID: "wh-missing", CarrierID: "car-fedex", Weight: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "warehouse:")

	_, err = uc.Create(dto.CreateShipmentRequest{
		OrderID: "ord-1", WarehouseID: warehouseChicago, CarrierID: "car-missing", Weight: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "carrier:")

	_, err = uc.Create(dto.CreateShipmentRequest{
		OrderID: "ord-1", WarehouseID: warehouseChicago, CarrierID: "car-fedex", Weight: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
