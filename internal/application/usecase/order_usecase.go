package usecase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

// OrderUseCase order intake and listing. Line items are priced from the
// product catalog at creation time; later price changes never reprice an
// existing order.
type OrderUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, customers: customers, products: products}
}

// Create places an order: resolves each SKU against the catalog, snapshots
// unit prices into the line items and totals them.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		if it.SKU == "" || it.Qty < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.products.GetBySKU(it.SKU)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("sku %s: %w", it.SKU, domain.ErrNotFound)
		}
		lineTotal := product.UnitPrice.Mul(decimal.NewFromInt(int64(it.Qty)))
		items = append(items, entity.OrderItem{
			SKU:        it.SKU,
			Qty:        it.Qty,
			UnitPrice:  product.UnitPrice,
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		CustomerID:  in.CustomerID,
		OrderNumber: newOrderNumber(now),
		Status:      entity.OrderStatusPending,
		Items:       items,
		TotalAmount: total,
		CreatedAt:   now,
		UpdatedAt:   now,
		Customer:    customer,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID fetches one order with its customer, (nil, nil) when absent.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List returns a page of order summaries, newest first.
func (uc *OrderUseCase) List(page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	summaries, err := uc.orders.ListSummaries(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, dto.OrderSummaryResponse{
			ID:            s.Order.ID,
			OrderNumber:   s.Order.OrderNumber,
			Status:        s.Order.Status,
			TotalAmount:   s.Order.TotalAmount,
			CustomerName:  s.CustomerName,
			CustomerEmail: s.CustomerEmail,
			ItemsCount:    s.ItemsCount,
			ShipmentCount: s.ShipmentCount,
			CreatedAt:     s.Order.CreatedAt,
		})
	}
	return &dto.OrderListResponse{Items: items, Page: page}, nil
}

// newOrderNumber formats ORD-YYYYMM-XXXXXX with a random 6-digit suffix.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%06d", now.Format("200601"), rand.Intn(1000000))
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.NewOrderItemResponse(it))
	}
	out := &dto.OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		Items:       items,
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
	}
	if o.Customer != nil {
		out.Customer = toCustomerResponse(o.Customer)
	}
	return out
}
