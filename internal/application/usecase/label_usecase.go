package usecase

import (
	"context"
	"fmt"

	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

// ShippingLabelGenerator renders the printable label for a shipment. The
// shipment comes with its carrier and origin warehouse joined; the order
// supplies the destination customer.
type ShippingLabelGenerator interface {
	GenerateLabelPDF(ctx context.Context, shipment *entity.Shipment, order *entity.Order) ([]byte, error)
}

// LabelUseCase produces the printable PDF label for a shipment.
type LabelUseCase struct {
	shipments repository.ShipmentRepository
	orders    repository.OrderRepository
	generator ShippingLabelGenerator
}

// NewLabelUseCase builds the use case.
func NewLabelUseCase(
	shipments repository.ShipmentRepository,
	orders repository.OrderRepository,
	generator ShippingLabelGenerator,
) *LabelUseCase {
	return &LabelUseCase{shipments: shipments, orders: orders, generator: generator}
}

// DownloadLabel loads the shipment and its order and renders the label.
// Returns domain.ErrNotFound when the shipment does not exist.
func (uc *LabelUseCase) DownloadLabel(ctx context.Context, shipmentID string) (pdfBytes []byte, filename string, err error) {
	shipment, err := uc.shipments.GetByID(shipmentID)
	if err != nil {
		return nil, "", fmt.Errorf("label: load shipment: %w", err)
	}
	if shipment == nil {
		return nil, "", domain.ErrNotFound
	}

	order, err := uc.orders.GetByID(shipment.OrderID)
	if err != nil {
		return nil, "", fmt.Errorf("label: load order: %w", err)
	}
	if order == nil {
		return nil, "", fmt.Errorf("label: order: %w", domain.ErrNotFound)
	}

	pdfBytes, err = uc.generator.GenerateLabelPDF(ctx, shipment, order)
	if err != nil {
		return nil, "", fmt.Errorf("label: render: %w", err)
	}
	return pdfBytes, fmt.Sprintf("label_%s.pdf", shipment.TrackingNumber), nil
}
