package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/blueshipsync/shipsync-api/internal/application/chat"
	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/domain"
)

// ChatHandler the dashboard assistant endpoint.
type ChatHandler struct {
	uc *chat.ChatUseCase
}

// NewChatHandler builds the handler.
func NewChatHandler(uc *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Send godoc
// @Summary      Ask the logistics assistant
// @Description  Structured warehouse/inventory questions are answered from the database; anything else falls through to the assistant service.
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Handle(c.Context(), GetUserID(c), in.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to process chat message"})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Recent chat history
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Max turns"  default(50)
// @Success      200  {object}  dto.ChatHistoryResponse
// @Router       /api/chat/history [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(GetUserID(c), c.QueryInt("limit", 50))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
