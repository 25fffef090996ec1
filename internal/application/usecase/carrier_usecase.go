package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

// CarrierUseCase carrier catalog and rate quoting.
type CarrierUseCase struct {
	repo repository.CarrierRepository
}

// NewCarrierUseCase builds the use case.
func NewCarrierUseCase(repo repository.CarrierRepository) *CarrierUseCase {
	return &CarrierUseCase{repo: repo}
}

// Create registers a carrier service level.
func (uc *CarrierUseCase) Create(in dto.CreateCarrierRequest) (*dto.CarrierResponse, error) {
	if in.Name == "" || in.ServiceLevel == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	carrier := &entity.Carrier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ServiceLevel:  in.ServiceLevel,
		EstimatedDays: in.EstimatedDays,
		BaseRate:      in.BaseRate,
		PerPoundRate:  in.PerPoundRate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(carrier); err != nil {
		return nil, err
	}
	return toCarrierResponse(carrier), nil
}

// List returns every carrier service level.
func (uc *CarrierUseCase) List() ([]dto.CarrierResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CarrierResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCarrierResponse(c))
	}
	return items, nil
}

// Quote estimates the shipping cost for a package weight with one carrier:
// base rate plus per-pound rate times weight, rounded to the cent.
func (uc *CarrierUseCase) Quote(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if in.Weight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	carrier, err := uc.repo.GetByID(in.CarrierID)
	if err != nil {
		return nil, err
	}
	if carrier == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.QuoteResponse{
		Carrier:       *toCarrierResponse(carrier),
		Weight:        in.Weight,
		EstimatedCost: carrier.EstimateCost(in.Weight),
		EstimatedDays: carrier.EstimatedDays,
	}, nil
}

func toCarrierResponse(c *entity.Carrier) *dto.CarrierResponse {
	return &dto.CarrierResponse{
		ID:            c.ID,
		Name:          c.Name,
		ServiceLevel:  c.ServiceLevel,
		EstimatedDays: c.EstimatedDays,
		BaseRate:      c.BaseRate,
		PerPoundRate:  c.PerPoundRate,
	}
}
