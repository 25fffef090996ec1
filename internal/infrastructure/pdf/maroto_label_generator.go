// Package pdf renders printable shipping labels with Maroto v2.
//
// Label layout (A6, portrait):
//
//	┌───────────────────────────────┐
//	│  CARRIER + service level      │
//	│  ───────────────────────────  │
//	│  FROM: warehouse address      │
//	│  TO:   customer address       │
//	│  ───────────────────────────  │
//	│  Order # / weight / cost      │
//	│  ───────────────────────────  │
//	│  ║║│║║║│║  barcode            │
//	│  TRACKING NUMBER              │
//	└───────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

var (
	colorInk  = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoLabelGenerator implements usecase.ShippingLabelGenerator using Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator builds the generator.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabelPDF renders the label and returns its bytes.
func (g *MarotoLabelGenerator) GenerateLabelPDF(
	_ context.Context,
	shipment *entity.Shipment,
	order *entity.Order,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(6).WithRightMargin(6).
		WithTopMargin(6).WithBottomMargin(6).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Shipping Label "+shipment.TrackingNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(carrierRow(shipment.Carrier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorInk, Thickness: 0.8}))
	m.AddRows(fromRow(shipment.Warehouse))
	m.AddRows(toRow(order.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(packageRow(shipment, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range trackingRows(shipment) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate label: %w", err)
	}
	return doc.GetBytes(), nil
}

// carrierRow: carrier name plus service level and transit promise.
func carrierRow(carrier *entity.Carrier) core.Row {
	name, service := "CARRIER", ""
	if carrier != nil {
		name = carrier.Name
		service = fmt.Sprintf("%s · %d day(s)", carrier.ServiceLevel, carrier.EstimatedDays)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorInk, Top: 1,
			}),
			text.New(service, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
	)
}

// fromRow: origin warehouse block.
func fromRow(warehouse *entity.Warehouse) core.Row {
	name, addr := "—", ""
	if warehouse != nil {
		name = warehouse.Name
		addr = fmt.Sprintf("%s, %s, %s %s",
			nonEmpty(warehouse.Address, "—"),
			warehouse.City, warehouse.State, warehouse.ZipCode)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FROM", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 4}),
			text.New(addr, props.Text{Size: 7, Top: 8, Color: colorGray}),
		),
	)
}

// toRow: destination customer block, the visually dominant section.
func toRow(customer *entity.Customer) core.Row {
	name, street, cityLine := "—", "", ""
	if customer != nil {
		name = customer.Name
		if a := customer.ShippingAddress; a != nil {
			street = a.Street
			cityLine = fmt.Sprintf("%s, %s %s %s", a.City, a.State, a.Zip, a.Country)
		}
	}
	return row.New(18).Add(
		col.New(12).Add(
			text.New("TO", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 4}),
			text.New(street, props.Text{Size: 9, Top: 9}),
			text.New(cityLine, props.Text{Size: 9, Top: 13}),
		),
	)
}

// packageRow: order reference, weight and quoted cost.
func packageRow(shipment *entity.Shipment, order *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(5).Add(
			text.New("ORDER", props.Text{Style: fontstyle.Bold, Size: 6.5, Color: colorGray, Top: 1}),
			text.New(order.OrderNumber, props.Text{Size: 8, Top: 4.5}),
		),
		col.New(3).Add(
			text.New("WEIGHT", props.Text{Style: fontstyle.Bold, Size: 6.5, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%.1f lb", shipment.Weight), props.Text{Size: 8, Top: 4.5}),
		),
		col.New(4).Add(
			text.New("COST", props.Text{Style: fontstyle.Bold, Size: 6.5, Color: colorGray, Top: 1, Align: align.Right}),
			text.New("$"+shipment.ShippingCost.StringFixed(2), props.Text{Size: 8, Top: 4.5, Align: align.Right}),
		),
	)
}

// trackingRows: Code 128 barcode over the printed tracking number.
func trackingRows(shipment *entity.Shipment) []core.Row {
	return []core.Row{
		row.New(22).Add(
			col.New(12).Add(code.NewBar(shipment.TrackingNumber, props.Barcode{
				Percent: 90,
				Center:  true,
			})),
		),
		row.New(7).Add(
			col.New(12).Add(text.New(shipment.TrackingNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 1,
			})),
		),
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
