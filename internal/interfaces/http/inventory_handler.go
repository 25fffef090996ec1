package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/application/usecase"
	"github.com/blueshipsync/shipsync-api/internal/domain"
)

// InventoryHandler the read endpoints behind the warehouse detail page:
// paginated inventory, category options, summary stats and the combined
// overview. The page reads never 500: failures degrade to empty results.
type InventoryHandler struct {
	uc *usecase.InventoryQueryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *usecase.InventoryQueryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Query godoc
// @Summary      Paginated warehouse inventory
// @Description  Text search ORs over SKU, product name and bin location; status and category filters AND with it. "all" or empty disables a filter.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "Warehouse ID"
// @Param        search    query  string  false  "Case-insensitive text search"
// @Param        status    query  string  false  "Inventory status"  default(all)
// @Param        category  query  string  false  "Product category"  default(all)
// @Param        page      query  int     false  "1-based page"      default(1)
// @Param        limit     query  int     false  "Page size"         default(20)
// @Success      200  {object}  dto.PaginatedInventoryResponse
// @Router       /api/warehouses/{id}/inventory [get]
func (h *InventoryHandler) Query(c *fiber.Ctx) error {
	var in dto.InventoryFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	out := h.uc.Query(c.Context(), c.Params("id"), in)
	return c.JSON(out)
}

// Categories godoc
// @Summary      Category filter options for a warehouse
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Warehouse ID"
// @Success      200  {array}  string
// @Router       /api/warehouses/{id}/inventory/categories [get]
func (h *InventoryHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories(c.Context(), c.Params("id")))
}

// Stats godoc
// @Summary      Inventory summary stats for a warehouse
// @Description  Always computed over the full unfiltered record set.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Warehouse ID"
// @Success      200  {object}  dto.InventoryStatsResponse
// @Router       /api/warehouses/{id}/inventory/stats [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.Stats(c.Context(), c.Params("id")))
}

// Overview godoc
// @Summary      Warehouse detail page payload
// @Description  Warehouse metadata, first inventory page, category options and stats fetched concurrently.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "Warehouse ID"
// @Param        page   query  int     false  "1-based page"  default(1)
// @Param        limit  query  int     false  "Page size"     default(20)
// @Success      200  {object}  dto.WarehouseOverviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/overview [get]
func (h *InventoryHandler) Overview(c *fiber.Ctx) error {
	var in dto.InventoryFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	out, err := h.uc.Overview(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "warehouse not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
