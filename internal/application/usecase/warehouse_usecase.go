package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

// WarehouseUseCase CRUD for distribution centers.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase builds the use case.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create registers a warehouse. Names must be unique.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Status == "" {
		in.Status = entity.WarehouseStatusActive
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		ZipCode:    in.ZipCode,
		Country:    in.Country,
		TotalSpace: in.TotalSpace,
		UsedSpace:  in.UsedSpace,
		Status:     in.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	warehouse.UtilizationPct = utilizationPct(warehouse.UsedSpace, warehouse.TotalSpace)
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID fetches one warehouse, (nil, nil) when absent.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// Update patches a warehouse; nil fields are untouched.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	if in.City != nil {
		warehouse.City = *in.City
	}
	if in.State != nil {
		warehouse.State = *in.State
	}
	if in.ZipCode != nil {
		warehouse.ZipCode = *in.ZipCode
	}
	if in.Country != nil {
		warehouse.Country = *in.Country
	}
	if in.TotalSpace != nil {
		warehouse.TotalSpace = *in.TotalSpace
	}
	if in.UsedSpace != nil {
		warehouse.UsedSpace = *in.UsedSpace
	}
	if in.Status != nil {
		warehouse.Status = *in.Status
	}
	warehouse.UtilizationPct = utilizationPct(warehouse.UsedSpace, warehouse.TotalSpace)
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List returns every warehouse.
func (uc *WarehouseUseCase) List() (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Items: items}, nil
}

// Delete removes a warehouse.
func (uc *WarehouseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func utilizationPct(used, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(used)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:             w.ID,
		Name:           w.Name,
		Address:        w.Address,
		City:           w.City,
		State:          w.State,
		ZipCode:        w.ZipCode,
		Country:        w.Country,
		TotalSpace:     w.TotalSpace,
		UsedSpace:      w.UsedSpace,
		UtilizationPct: w.UtilizationPct,
		Status:         w.Status,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}
