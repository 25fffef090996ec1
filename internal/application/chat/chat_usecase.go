package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/application/ports"
	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
	"github.com/blueshipsync/shipsync-api/pkg/logger"
)

// Cap on how many inventory rows a chat reply lists.
const maxChatItems = 100

// ChatUseCase the dashboard assistant: answers structured questions about
// warehouses and inventory from the database and falls back to the
// AssistantService port for everything else. Every turn (user and assistant)
// is persisted as chat history.
type ChatUseCase struct {
	warehouses repository.WarehouseRepository
	inventory  repository.InventoryRepository
	messages   repository.ChatRepository
	assistant  ports.AssistantService
	log        *logger.Logger
}

// NewChatUseCase builds the use case.
func NewChatUseCase(
	warehouses repository.WarehouseRepository,
	inventory repository.InventoryRepository,
	messages repository.ChatRepository,
	assistant ports.AssistantService,
	log *logger.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		warehouses: warehouses,
		inventory:  inventory,
		messages:   messages,
		assistant:  assistant,
		log:        log,
	}
}

// Handle answers one chat message and persists both turns. History writes
// are best-effort: a failed insert is logged, never surfaced to the user.
func (uc *ChatUseCase) Handle(ctx context.Context, userID, message string) (*dto.ChatResponse, error) {
	if message == "" {
		return nil, domain.ErrInvalidInput
	}

	uc.persist(userID, entity.ChatRoleUser, message)

	reply, err := uc.replyTo(ctx, message)
	if err != nil {
		return nil, err
	}

	uc.persist(userID, entity.ChatRoleAssistant, reply)
	return &dto.ChatResponse{Reply: reply}, nil
}

// History returns the user's recent chat turns, oldest first.
func (uc *ChatUseCase) History(userID string, limit int) (*dto.ChatHistoryResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	list, err := uc.messages.ListByUser(userID, limit)
	if err != nil {
		return nil, err
	}
	messages := make([]dto.ChatMessageResponse, 0, len(list))
	for _, m := range list {
		messages = append(messages, dto.ChatMessageResponse{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.ChatHistoryResponse{Messages: messages}, nil
}

func (uc *ChatUseCase) replyTo(ctx context.Context, message string) (string, error) {
	intent := ParseIntent(message)

	switch intent.Type {
	case IntentInventory:
		return uc.inventoryReply(ctx, intent.WarehouseName)
	case IntentWarehouses:
		return uc.warehousesReply()
	case IntentGeneral:
		return helpReply, nil
	default:
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		reply, err := uc.assistant.Reply(ctx, message)
		if err != nil {
			return "", fmt.Errorf("chat: assistant fallback: %w", err)
		}
		return reply, nil
	}
}

func (uc *ChatUseCase) inventoryReply(ctx context.Context, name string) (string, error) {
	warehouses, err := uc.warehouses.List()
	if err != nil {
		return "", fmt.Errorf("chat: list warehouses: %w", err)
	}
	warehouse := MatchWarehouse(warehouses, name)
	if warehouse == nil {
		return FormatWarehouseNotFound(name), nil
	}

	stats, err := uc.inventory.Stats(ctx, warehouse.ID)
	if err != nil {
		return "", fmt.Errorf("chat: inventory stats: %w", err)
	}
	records, err := uc.inventory.Search(ctx, warehouse.ID, repository.InventoryFilter{Limit: maxChatItems})
	if err != nil {
		return "", fmt.Errorf("chat: inventory search: %w", err)
	}

	items := make([]InventoryLine, 0, len(records))
	for _, r := range records {
		line := InventoryLine{
			Quantity:    r.Quantity,
			BinLocation: r.BinLocation,
			Status:      r.Status,
		}
		if r.Product != nil {
			line.SKU = r.Product.SKU
			line.Name = r.Product.Name
			line.Category = r.Product.Category
		}
		items = append(items, line)
	}

	return FormatInventory(InventorySummary{
		WarehouseName: warehouse.Name,
		TotalItems:    stats.TotalItems,
		TotalUnits:    stats.TotalUnits,
		LowStockItems: stats.LowStockItems,
		Items:         items,
	}), nil
}

func (uc *ChatUseCase) warehousesReply() (string, error) {
	warehouses, err := uc.warehouses.List()
	if err != nil {
		return "", fmt.Errorf("chat: list warehouses: %w", err)
	}
	return FormatWarehouses(warehouses), nil
}

func (uc *ChatUseCase) persist(userID, role, content string) {
	err := uc.messages.Create(&entity.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("role", role).Msg("chat history insert failed")
	}
}
