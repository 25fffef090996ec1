package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, category, weight, dimensions,
		unit_price, image_url, created_at, updated_at`

// ProductRepo implements ProductRepository over PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product persistence adapter. Pass pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product. SKU must be unique.
func (r *ProductRepo) Create(p *entity.Product) error {
	dims, err := marshalDimensions(p.Dimensions)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.Name, p.Description, p.Category, p.Weight, dims,
		p.UnitPrice, p.ImageURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by ID. Returns (nil, nil) when not found.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetBySKU fetches a product by its unique SKU. Returns (nil, nil) when not found.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return scanProduct(r.q.QueryRow(context.Background(), query, sku), "get product by sku")
}

// List returns products sorted by name with pagination.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func marshalDimensions(d *entity.Dimensions) ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal dimensions: %w", err)
	}
	return raw, nil
}

func unmarshalDimensions(raw []byte) (*entity.Dimensions, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var d entity.Dimensions
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("unmarshal dimensions: %w", err)
	}
	return &d, nil
}

func scanProduct(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	var dims []byte
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Category, &p.Weight, &dims,
		&p.UnitPrice, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if p.Dimensions, err = unmarshalDimensions(dims); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProductRow(rows pgx.Rows) (*entity.Product, error) {
	var p entity.Product
	var dims []byte
	if err := rows.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Category, &p.Weight, &dims,
		&p.UnitPrice, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	var err error
	if p.Dimensions, err = unmarshalDimensions(dims); err != nil {
		return nil, err
	}
	return &p, nil
}
