package usecase_test

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/application/usecase"
	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

type fakeOrderRepo struct {
	byID map[string]*entity.Order
}

func (f *fakeOrderRepo) Create(o *entity.Order) error { f.byID[o.ID] = o; return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return f.byID[id], nil
}
func (f *fakeOrderRepo) ListSummaries(limit, offset int) ([]*repository.OrderSummary, error) {
	var out []*repository.OrderSummary
	for _, o := range f.byID {
		out = append(out, &repository.OrderSummary{
			Order:        *o,
			CustomerName: o.Customer.Name,
			ItemsCount:   len(o.Items),
		})
	}
	return out, nil
}

type fakeCustomerRepo struct {
	byID map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.byID[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.byID[id], nil
}
func (f *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

type fakeProductRepo struct {
	bySKU map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.bySKU[p.SKU] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range f.bySKU {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return f.bySKU[sku], nil
}
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.bySKU {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Delete(id string) error { return nil }

func newOrderUC() (*usecase.OrderUseCase, *fakeOrderRepo, *fakeProductRepo) {
	orders := &fakeOrderRepo{byID: map[string]*entity.Order{}}
	customers := &fakeCustomerRepo{byID: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", Name: "Acme Retail Group", Email: "purchasing@acmeretail.com"},
	}}
	products := &fakeProductRepo{bySKU: map[string]*entity.Product{
		"ELC-IPHONE15-128": {ID: "p1", SKU: "ELC-IPHONE15-128", Name: "iPhone 15 128GB",
			UnitPrice: decimal.RequireFromString("799.99")},
		"APP-NIKE-AIR-MAX": {ID: "p2", SKU: "APP-NIKE-AIR-MAX", Name: "Nike Air Max 270",
			UnitPrice: decimal.RequireFromString("150.00")},
	}}
	return usecase.NewOrderUseCase(orders, customers, products), orders, products
}

func TestOrderCreate_SnapshotsPricesAndTotals(t *testing.T) {
	uc, orders, products := newOrderUC()

	out, err := uc.Create(dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items: []dto.OrderItemRequest{
			{SKU: "ELC-IPHONE15-128", Qty: 2},
			{SKU: "APP-NIKE-AIR-MAX", Qty: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	// 2 * 799.99 + 3 * 150.00 = 2049.98
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("2049.98")),
		"got %s", out.TotalAmount)
	assert.True(t, out.Items[0].TotalPrice.Equal(decimal.RequireFromString("1599.98")))
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	require.NotNil(t, out.Customer)
	assert.Equal(t, "Acme Retail Group", out.Customer.Name)

	// Catalog price changes must not reprice the stored order.
	products.bySKU["ELC-IPHONE15-128"].UnitPrice = decimal.RequireFromString("999.99")
	stored := orders.byID[out.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.Items[0].UnitPrice.Equal(decimal.RequireFromString("799.99")))
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("2049.98")))
}

func TestOrderCreate_OrderNumberFormat(t *testing.T) {
	uc, _, _ := newOrderUC()

	out, err := uc.Create(dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{SKU: "APP-NIKE-AIR-MAX", Qty: 1}},
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{6}-\d{6}$`), out.OrderNumber)
}

func TestOrderCreate_Validation(t *testing.T) {
	uc, _, _ := newOrderUC()

	_, err := uc.Create(dto.CreateOrderRequest{CustomerID: "cust-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{SKU: "ELC-IPHONE15-128", Qty: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateOrderRequest{
		CustomerID: "cust-missing",
		Items:      []dto.OrderItemRequest{{SKU: "ELC-IPHONE15-128", Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{SKU: "SKU-UNKNOWN", Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "SKU-UNKNOWN")
}

func TestOrderGetByID_AbsentIsNilNil(t *testing.T) {
	uc, _, _ := newOrderUC()

	out, err := uc.GetByID("order-missing")
	assert.NoError(t, err)
	assert.Nil(t, out)
}
