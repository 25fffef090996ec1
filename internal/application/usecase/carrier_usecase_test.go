package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/application/usecase"
	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

type fakeCarrierRepo struct {
	byID map[string]*entity.Carrier
}

func (f *fakeCarrierRepo) Create(c *entity.Carrier) error { f.byID[c.ID] = c; return nil }
func (f *fakeCarrierRepo) GetByID(id string) (*entity.Carrier, error) {
	return f.byID[id], nil
}
func (f *fakeCarrierRepo) List() ([]*entity.Carrier, error) {
	var out []*entity.Carrier
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func fedexGround() *entity.Carrier {
	return &entity.Carrier{
		ID:            "car-fedex",
		Name:          "FedEx",
		ServiceLevel:  "Ground",
		EstimatedDays: 3,
		BaseRate:      decimal.RequireFromString("8.50"),
		PerPoundRate:  decimal.RequireFromString("0.75"),
	}
}

func TestCarrierQuote_BasePlusPerPound(t *testing.T) {
	repo := &fakeCarrierRepo{byID: map[string]*entity.Carrier{"car-fedex": fedexGround()}}
	uc := usecase.NewCarrierUseCase(repo)

	// 8.50 + 0.75 * 12.4 = 17.80
	out, err := uc.Quote(dto.QuoteRequest{
		CarrierID: "car-fedex",
		Weight:    decimal.RequireFromString("12.4"),
	})
	require.NoError(t, err)
	assert.True(t, out.EstimatedCost.Equal(decimal.RequireFromString("17.80")),
		"got %s", out.EstimatedCost)
	assert.Equal(t, 3, out.EstimatedDays)
	assert.Equal(t, "FedEx", out.Carrier.Name)
}

func TestCarrierQuote_RoundsToTheCent(t *testing.T) {
	repo := &fakeCarrierRepo{byID: map[string]*entity.Carrier{"car-fedex": fedexGround()}}
	uc := usecase.NewCarrierUseCase(repo)

	// 8.50 + 0.75 * 0.333 = 8.74975 -> 8.75
	out, err := uc.Quote(dto.QuoteRequest{
		CarrierID: "car-fedex",
		Weight:    decimal.RequireFromString("0.333"),
	})
	require.NoError(t, err)
	assert.Equal(t, "8.75", out.EstimatedCost.StringFixed(2))
}

func TestCarrierQuote_ZeroWeightIsJustTheBaseRate(t *testing.T) {
	repo := &fakeCarrierRepo{byID: map[string]*entity.Carrier{"car-fedex": fedexGround()}}
	uc := usecase.NewCarrierUseCase(repo)

	out, err := uc.Quote(dto.QuoteRequest{CarrierID: "car-fedex", Weight: decimal.Zero})
	require.NoError(t, err)
	assert.True(t, out.EstimatedCost.Equal(decimal.RequireFromString("8.50")))
}

func TestCarrierQuote_Errors(t *testing.T) {
	repo := &fakeCarrierRepo{byID: map[string]*entity.Carrier{"car-fedex": fedexGround()}}
	uc := usecase.NewCarrierUseCase(repo)

	_, err := uc.Quote(dto.QuoteRequest{CarrierID: "car-fedex", Weight: decimal.RequireFromString("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Quote(dto.QuoteRequest{CarrierID: "car-missing", Weight: decimal.RequireFromString("5")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCarrierCreate_RequiresNameAndServiceLevel(t *testing.T) {
	repo := &fakeCarrierRepo{byID: map[string]*entity.Carrier{}}
	uc := usecase.NewCarrierUseCase(repo)

	_, err := uc.Create(dto.CreateCarrierRequest{Name: "UPS"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(dto.CreateCarrierRequest{
		Name:          "UPS",
		ServiceLevel:  "Standard",
		EstimatedDays: 2,
		BaseRate:      decimal.RequireFromString("9.25"),
		PerPoundRate:  decimal.RequireFromString("0.80"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Len(t, repo.byID, 1)
}
