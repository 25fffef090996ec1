// Command seed resets the database and loads the demo dataset: two users,
// three carriers, three warehouses, ten products stocked in every warehouse,
// five customers, five orders, four shipments and a short chat history.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/infrastructure/postgres"
	"github.com/blueshipsync/shipsync-api/pkg/config"
	"github.com/blueshipsync/shipsync-api/pkg/logger"
)

// Every seeded account logs in with this password.
const demoPassword = "password123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	log.Info().Msg("clearing existing data")
	_, err = pool.Exec(ctx, `TRUNCATE chat_messages, shipments, orders, customers,
		inventory, products, warehouses, carriers, users CASCADE`)
	if err != nil {
		log.Fatal().Err(err).Msg("truncate")
	}

	s := seeder{
		users:      postgres.NewUserRepository(pool),
		warehouses: postgres.NewWarehouseRepository(pool),
		products:   postgres.NewProductRepository(pool),
		inventory:  postgres.NewInventoryRepository(pool),
		customers:  postgres.NewCustomerRepository(pool),
		carriers:   postgres.NewCarrierRepository(pool),
		orders:     postgres.NewOrderRepository(pool),
		shipments:  postgres.NewShipmentRepository(pool),
		chat:       postgres.NewChatRepository(pool),
		now:        time.Now(),
	}

	admin, operator := s.seedUsers(log)
	carriers := s.seedCarriers(log)
	warehouses := s.seedWarehouses(log)
	products := s.seedProducts(log)
	s.seedInventory(log, warehouses, products)
	customers := s.seedCustomers(log)
	orders := s.seedOrders(log, customers)
	s.seedShipments(log, orders, warehouses, carriers)
	s.seedChat(log, admin, operator)

	log.Info().
		Int("warehouses", len(warehouses)).
		Int("products", len(products)).
		Int("inventory_records", len(warehouses)*len(products)).
		Int("customers", len(customers)).
		Int("carriers", len(carriers)).
		Int("orders", len(orders)).
		Msg("database seeding completed")
}

type seeder struct {
	users      *postgres.UserRepo
	warehouses *postgres.WarehouseRepo
	products   *postgres.ProductRepo
	inventory  *postgres.InventoryRepo
	customers  *postgres.CustomerRepo
	carriers   *postgres.CarrierRepo
	orders     *postgres.OrderRepo
	shipments  *postgres.ShipmentRepo
	chat       *postgres.ChatRepo
	now        time.Time
}

func (s seeder) seedUsers(log *logger.Logger) (admin, operator *entity.User) {
	log.Info().Msg("creating users")
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}
	admin = &entity.User{
		ID:           uuid.New().String(),
		Email:        "admin@blueshipsync.com",
		PasswordHash: string(hash),
		Name:         "Sarah Johnson",
		Company:      "Blue Ship Sync Corp",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    s.now,
		UpdatedAt:    s.now,
	}
	operator = &entity.User{
		ID:           uuid.New().String(),
		Email:        "operator@blueshipsync.com",
		PasswordHash: string(hash),
		Name:         "Mike Chen",
		Company:      "Blue Ship Sync Corp",
		Role:         entity.RoleOperator,
		Status:       "active",
		CreatedAt:    s.now,
		UpdatedAt:    s.now,
	}
	s.must(log, "user", s.users.Create(admin))
	s.must(log, "user", s.users.Create(operator))
	return admin, operator
}

func (s seeder) seedCarriers(log *logger.Logger) []*entity.Carrier {
	log.Info().Msg("creating carriers")
	carriers := []*entity.Carrier{
		{Name: "FedEx", ServiceLevel: "Ground", EstimatedDays: 3, BaseRate: dec("8.50"), PerPoundRate: dec("0.75")},
		{Name: "UPS", ServiceLevel: "Standard", EstimatedDays: 2, BaseRate: dec("9.25"), PerPoundRate: dec("0.80")},
		{Name: "DHL", ServiceLevel: "Express", EstimatedDays: 1, BaseRate: dec("12.00"), PerPoundRate: dec("1.20")},
	}
	for _, c := range carriers {
		c.ID = uuid.New().String()
		c.CreatedAt, c.UpdatedAt = s.now, s.now
		s.must(log, "carrier", s.carriers.Create(c))
	}
	return carriers
}

func (s seeder) seedWarehouses(log *logger.Logger) []*entity.Warehouse {
	log.Info().Msg("creating warehouses")
	warehouses := []*entity.Warehouse{
		{
			Name: "Chicago DC", Address: "1234 Industrial Blvd",
			City: "Chicago", State: "IL", ZipCode: "60609", Country: "USA",
			TotalSpace: 50000, UsedSpace: 35000, UtilizationPct: dec("70.0"),
			Status: entity.WarehouseStatusActive,
		},
		{
			Name: "Los Angeles Fulfillment", Address: "5678 Commerce Way",
			City: "Los Angeles", State: "CA", ZipCode: "90210", Country: "USA",
			TotalSpace: 75000, UsedSpace: 45000, UtilizationPct: dec("60.0"),
			Status: entity.WarehouseStatusActive,
		},
		{
			Name: "Atlanta Crossdock", Address: "9012 Logistics Lane",
			City: "Atlanta", State: "GA", ZipCode: "30309", Country: "USA",
			TotalSpace: 30000, UsedSpace: 18000, UtilizationPct: dec("60.0"),
			Status: entity.WarehouseStatusActive,
		},
	}
	for _, w := range warehouses {
		w.ID = uuid.New().String()
		w.CreatedAt, w.UpdatedAt = s.now, s.now
		s.must(log, "warehouse", s.warehouses.Create(w))
	}
	return warehouses
}

func (s seeder) seedProducts(log *logger.Logger) []*entity.Product {
	log.Info().Msg("creating products")
	products := []*entity.Product{
		{
			SKU: "ELC-IPHONE15-128", Name: "iPhone 15 128GB",
			Description: "Latest iPhone with A17 Pro chip and titanium design",
			Category:    "Electronics", Weight: 0.4,
			Dimensions: &entity.Dimensions{Length: 14.8, Width: 7.1, Height: 0.8},
			UnitPrice:  dec("799.99"),
			ImageURL:   "https://images.unsplash.com/photo-1592899677977-9c10ca588bbd?w=400",
		},
		{
			SKU: "ELC-MACBOOK-AIR-M3", Name: "MacBook Air M3 13-inch",
			Description: "Ultra-thin laptop with M3 chip and Liquid Retina display",
			Category:    "Electronics", Weight: 2.7,
			Dimensions: &entity.Dimensions{Length: 30.4, Width: 21.5, Height: 1.1},
			UnitPrice:  dec("1099.99"),
			ImageURL:   "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400",
		},
		{
			SKU: "ELC-SAMSUNG-TV-55", Name: `Samsung 55" 4K Smart TV`,
			Description: "Crystal UHD 4K Smart TV with Tizen OS",
			Category:    "Electronics", Weight: 18.5,
			Dimensions: &entity.Dimensions{Length: 123.2, Width: 70.8, Height: 5.9},
			UnitPrice:  dec("599.99"),
			ImageURL:   "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400",
		},
		{
			SKU: "APP-NIKE-AIR-MAX", Name: "Nike Air Max 270",
			Description: "Comfortable running shoes with Max Air cushioning",
			Category:    "Apparel", Weight: 0.8,
			Dimensions: &entity.Dimensions{Length: 32, Width: 22, Height: 12},
			UnitPrice:  dec("150.00"),
			ImageURL:   "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
		},
		{
			SKU: "APP-LEVI-JEANS-501", Name: "Levi's 501 Original Jeans",
			Description: "Classic straight-fit jeans in blue denim",
			Category:    "Apparel", Weight: 0.6,
			Dimensions: &entity.Dimensions{Length: 40, Width: 30, Height: 2},
			UnitPrice:  dec("89.99"),
			ImageURL:   "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=400",
		},
		{
			SKU: "APP-PATAGONIA-JACKET", Name: "Patagonia Down Sweater Jacket",
			Description: "Lightweight insulated jacket for outdoor adventures",
			Category:    "Apparel", Weight: 0.5,
			Dimensions: &entity.Dimensions{Length: 35, Width: 25, Height: 3},
			UnitPrice:  dec("199.99"),
			ImageURL:   "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400",
		},
		{
			SKU: "APP-NORTH-FACE-BACKPACK", Name: "The North Face Recon Backpack",
			Description: "Durable 30L backpack for hiking and travel",
			Category:    "Apparel", Weight: 1.2,
			Dimensions: &entity.Dimensions{Length: 50, Width: 30, Height: 20},
			UnitPrice:  dec("89.99"),
			ImageURL:   "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
		},
		{
			SKU: "APP-RAY-BAN-AVIATOR", Name: "Ray-Ban Aviator Classic Sunglasses",
			Description: "Classic aviator sunglasses with green lenses",
			Category:    "Apparel", Weight: 0.1,
			Dimensions: &entity.Dimensions{Length: 15, Width: 5, Height: 2},
			UnitPrice:  dec("154.99"),
			ImageURL:   "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=400",
		},
		{
			SKU: "APP-KITCHENAID-MIXER", Name: "KitchenAid Stand Mixer",
			Description: "5-quart stand mixer with dough hook and whisk",
			Category:    "Appliances", Weight: 12.0,
			Dimensions: &entity.Dimensions{Length: 35.6, Width: 25.4, Height: 30.5},
			UnitPrice:  dec("329.99"),
			ImageURL:   "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=400",
		},
		{
			SKU: "APP-DYSON-VACUUM-V15", Name: "Dyson V15 Detect Cordless Vacuum",
			Description: "Powerful cordless vacuum with laser dust detection",
			Category:    "Appliances", Weight: 3.0,
			Dimensions: &entity.Dimensions{Length: 25.4, Width: 10.2, Height: 108.0},
			UnitPrice:  dec("749.99"),
			ImageURL:   "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400",
		},
	}
	for _, p := range products {
		p.ID = uuid.New().String()
		p.CreatedAt, p.UpdatedAt = s.now, s.now
		s.must(log, "product", s.products.Create(p))
	}
	return products
}

func (s seeder) seedInventory(log *logger.Logger, warehouses []*entity.Warehouse, products []*entity.Product) {
	log.Info().Msg("creating inventory")
	ctx := context.Background()
	for _, w := range warehouses {
		for _, p := range products {
			counted := s.now.AddDate(0, 0, -randomBetween(1, 30))
			record := &entity.InventoryRecord{
				ID:            uuid.New().String(),
				WarehouseID:   w.ID,
				ProductID:     p.ID,
				Quantity:      randomBetween(20, 200),
				BinLocation:   randomBinLocation(),
				Status:        randomChoice(entity.InventoryStatusAvailable, entity.InventoryStatusReserved),
				LastCountedAt: &counted,
				CreatedAt:     s.now,
				UpdatedAt:     s.now,
			}
			s.must(log, "inventory", s.inventory.Create(ctx, record))
		}
	}
}

func (s seeder) seedCustomers(log *logger.Logger) []*entity.Customer {
	log.Info().Msg("creating customers")
	addr := func(street, city, state, zip string) *entity.Address {
		return &entity.Address{Street: street, City: city, State: state, Zip: zip, Country: "USA"}
	}
	customers := []*entity.Customer{
		{
			Name: "TechCorp Solutions", Email: "orders@techcorp.com", Phone: "+1-555-0123",
			ShippingAddress:  addr("100 Innovation Drive", "San Francisco", "CA", "94105"),
			BillingAddress:   addr("100 Innovation Drive", "San Francisco", "CA", "94105"),
			PreferredCarrier: "UPS",
		},
		{
			Name: "Fashion Forward LLC", Email: "purchasing@fashionforward.com", Phone: "+1-555-0456",
			ShippingAddress:  addr("250 Fashion Avenue", "New York", "NY", "10001"),
			BillingAddress:   addr("250 Fashion Avenue", "New York", "NY", "10001"),
			PreferredCarrier: "FedEx",
		},
		{
			Name: "John Smith", Email: "john.smith@email.com", Phone: "+1-555-0789",
			ShippingAddress:  addr("456 Oak Street", "Austin", "TX", "73301"),
			BillingAddress:   addr("456 Oak Street", "Austin", "TX", "73301"),
			PreferredCarrier: "DHL",
		},
		{
			Name: "Global Electronics Inc", Email: "procurement@globalelectronics.com", Phone: "+1-555-0321",
			ShippingAddress:  addr("789 Technology Blvd", "Seattle", "WA", "98101"),
			BillingAddress:   addr("789 Technology Blvd", "Seattle", "WA", "98101"),
			PreferredCarrier: "FedEx",
		},
		{
			Name: "Maria Rodriguez", Email: "maria.rodriguez@email.com", Phone: "+1-555-0654",
			ShippingAddress:  addr("321 Pine Street", "Miami", "FL", "33101"),
			BillingAddress:   addr("321 Pine Street", "Miami", "FL", "33101"),
			PreferredCarrier: "UPS",
		},
	}
	for _, c := range customers {
		c.ID = uuid.New().String()
		c.CreatedAt, c.UpdatedAt = s.now, s.now
		s.must(log, "customer", s.customers.Create(c))
	}
	return customers
}

func (s seeder) seedOrders(log *logger.Logger, customers []*entity.Customer) []*entity.Order {
	log.Info().Msg("creating orders")
	item := func(sku string, qty int, unit string) entity.OrderItem {
		unitPrice := dec(unit)
		return entity.OrderItem{
			SKU: sku, Qty: qty, UnitPrice: unitPrice,
			TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(qty))),
		}
	}
	orders := []*entity.Order{
		{
			CustomerID: customers[0].ID, Status: entity.OrderStatusProcessing,
			Items: []entity.OrderItem{
				item("ELC-IPHONE15-128", 2, "799.99"),
				item("ELC-MACBOOK-AIR-M3", 1, "1099.99"),
			},
		},
		{
			CustomerID: customers[1].ID, Status: entity.OrderStatusShipped,
			Items: []entity.OrderItem{
				item("APP-NIKE-AIR-MAX", 5, "150.00"),
				item("APP-LEVI-JEANS-501", 3, "89.99"),
			},
		},
		{
			CustomerID: customers[2].ID, Status: entity.OrderStatusPending,
			Items: []entity.OrderItem{
				item("ELC-SAMSUNG-TV-55", 1, "599.99"),
			},
		},
		{
			CustomerID: customers[3].ID, Status: entity.OrderStatusDelivered,
			Items: []entity.OrderItem{
				item("APP-KITCHENAID-MIXER", 2, "329.99"),
				item("APP-DYSON-VACUUM-V15", 1, "749.99"),
			},
		},
		{
			CustomerID: customers[4].ID, Status: entity.OrderStatusProcessing,
			Items: []entity.OrderItem{
				item("APP-PATAGONIA-JACKET", 1, "199.99"),
				item("APP-NORTH-FACE-BACKPACK", 2, "89.99"),
				item("APP-RAY-BAN-AVIATOR", 1, "154.99"),
			},
		},
	}
	for _, o := range orders {
		o.ID = uuid.New().String()
		o.OrderNumber = randomOrderNumber(s.now)
		total := decimal.Zero
		for _, it := range o.Items {
			total = total.Add(it.TotalPrice)
		}
		o.TotalAmount = total
		o.CreatedAt, o.UpdatedAt = s.now, s.now
		s.must(log, "order", s.orders.Create(o))
	}
	return orders
}

func (s seeder) seedShipments(log *logger.Logger, orders []*entity.Order, warehouses []*entity.Warehouse, carriers []*entity.Carrier) {
	log.Info().Msg("creating shipments")
	day := 24 * time.Hour
	date := func(d time.Duration) *time.Time {
		t := s.now.Add(d)
		return &t
	}
	shipments := []*entity.Shipment{
		{
			OrderID: orders[0].ID, WarehouseID: warehouses[0].ID, CarrierID: carriers[1].ID,
			Status: entity.ShipmentStatusInTransit, Weight: 3.1,
			Dimensions:   &entity.Dimensions{Length: 35, Width: 25, Height: 15},
			ShippingCost: dec("15.50"), LabelURL: "https://example.com/labels/shipment-001.pdf",
			EstimatedDeliveryDate: date(2 * day), CreatedAt: s.now.Add(-1 * day),
		},
		{
			OrderID: orders[1].ID, WarehouseID: warehouses[1].ID, CarrierID: carriers[0].ID,
			Status: entity.ShipmentStatusDelivered, Weight: 2.4,
			Dimensions:   &entity.Dimensions{Length: 30, Width: 20, Height: 12},
			ShippingCost: dec("12.75"), LabelURL: "https://example.com/labels/shipment-002.pdf",
			EstimatedDeliveryDate: date(-1 * day), ActualDeliveryDate: date(-1 * day),
			CreatedAt: s.now.Add(-4 * day),
		},
		{
			OrderID: orders[3].ID, WarehouseID: warehouses[2].ID, CarrierID: carriers[2].ID,
			Status: entity.ShipmentStatusShipped, Weight: 15.0,
			Dimensions:   &entity.Dimensions{Length: 40, Width: 30, Height: 25},
			ShippingCost: dec("25.00"), LabelURL: "https://example.com/labels/shipment-003.pdf",
			EstimatedDeliveryDate: date(1 * day), CreatedAt: s.now.Add(-2 * day),
		},
		{
			OrderID: orders[4].ID, WarehouseID: warehouses[0].ID, CarrierID: carriers[1].ID,
			Status: entity.ShipmentStatusPacked, Weight: 1.8,
			Dimensions:   &entity.Dimensions{Length: 25, Width: 20, Height: 10},
			ShippingCost: dec("10.25"), LabelURL: "https://example.com/labels/shipment-004.pdf",
			EstimatedDeliveryDate: date(3 * day), CreatedAt: s.now.Add(-1 * day),
		},
	}
	for _, sh := range shipments {
		sh.ID = uuid.New().String()
		sh.TrackingNumber = randomTrackingNumber()
		sh.UpdatedAt = s.now
		s.must(log, "shipment", s.shipments.Create(sh))
	}
}

func (s seeder) seedChat(log *logger.Logger, admin, operator *entity.User) {
	log.Info().Msg("creating chat messages")
	messages := []*entity.ChatMessage{
		{
			UserID: admin.ID, Role: entity.ChatRoleUser,
			Content:   "Can you help me track the status of order ORD-202412-123456?",
			CreatedAt: s.now.Add(-2 * time.Hour),
		},
		{
			UserID: admin.ID, Role: entity.ChatRoleAssistant,
			Content: "I found order ORD-202412-123456. It's currently in PROCESSING status and is expected to ship within 24 hours. " +
				"The order contains 2 iPhone 15s and 1 MacBook Air M3, totaling $2,699.97.",
			CreatedAt: s.now.Add(-2*time.Hour + 30*time.Second),
		},
		{
			UserID: operator.ID, Role: entity.ChatRoleUser,
			Content:   "What's the inventory level for Nike Air Max 270 in the Chicago DC warehouse?",
			CreatedAt: s.now.Add(-1 * time.Hour),
		},
		{
			UserID: operator.ID, Role: entity.ChatRoleUser,
			Content:   "I need to create a new shipment for order ORD-202412-789012. Can you help me select the best carrier?",
			CreatedAt: s.now.Add(-30 * time.Minute),
		},
		{
			UserID: operator.ID, Role: entity.ChatRoleAssistant,
			Content: "For order ORD-202412-789012, I recommend using FedEx Ground for this shipment. The package weighs 15.0 lbs " +
				"and will cost approximately $25.00. Estimated delivery is 3 business days. Would you like me to create the shipment label?",
			CreatedAt: s.now.Add(-30*time.Minute + 15*time.Second),
		},
	}
	for _, m := range messages {
		m.ID = uuid.New().String()
		s.must(log, "chat message", s.chat.Create(m))
	}
}

func (s seeder) must(log *logger.Logger, what string, err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("seed " + what)
	}
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func randomBetween(min, max int) int {
	return min + rand.Intn(max-min+1)
}

func randomChoice(options ...string) string {
	return options[rand.Intn(len(options))]
}

// randomBinLocation: zone A-E, row 1-9, shelf 1-4, e.g. "B32".
func randomBinLocation() string {
	zone := string(rune('A' + rand.Intn(5)))
	return fmt.Sprintf("%s%d%d", zone, 1+rand.Intn(9), 1+rand.Intn(4))
}

func randomTrackingNumber() string {
	prefix := randomChoice("1Z", "FX", "DH")
	return fmt.Sprintf("%s%010d", prefix, rand.Int63n(10_000_000_000))
}

func randomOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%06d", now.Format("200601"), rand.Intn(1000000))
}
