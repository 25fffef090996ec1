package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/application/usecase"
	"github.com/blueshipsync/shipsync-api/internal/domain"
)

// CarrierHandler HTTP endpoints for carriers and rate quotes.
type CarrierHandler struct {
	uc *usecase.CarrierUseCase
}

// NewCarrierHandler builds the handler.
func NewCarrierHandler(uc *usecase.CarrierUseCase) *CarrierHandler {
	return &CarrierHandler{uc: uc}
}

// Create godoc
// @Summary      Create carrier service level
// @Tags         carriers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCarrierRequest  true  "Carrier data"
// @Success      201   {object}  dto.CarrierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/carriers [post]
func (h *CarrierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCarrierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name and service_level are required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List carriers
// @Tags         carriers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CarrierResponse
// @Router       /api/carriers [get]
func (h *CarrierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Quote godoc
// @Summary      Quote shipping cost
// @Description  base rate + per-pound rate × weight, rounded to the cent.
// @Tags         carriers
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "Carrier ID"
// @Param        weight  query  number  true  "Package weight in pounds"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carriers/{id}/quote [get]
func (h *CarrierHandler) Quote(c *fiber.Ctx) error {
	weight, err := decimal.NewFromString(c.Query("weight", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "weight must be a number"})
	}
	out, err := h.uc.Quote(dto.QuoteRequest{CarrierID: c.Params("id"), Weight: weight})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "carrier not found"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "weight must not be negative"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
