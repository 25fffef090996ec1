package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
	"github.com/blueshipsync/shipsync-api/pkg/logger"
)

type stubWarehouseRepo struct {
	warehouses []*entity.Warehouse
}

func (s *stubWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (s *stubWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	for _, w := range s.warehouses {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}
func (s *stubWarehouseRepo) GetByName(string) (*entity.Warehouse, error) { return nil, nil }
func (s *stubWarehouseRepo) Update(*entity.Warehouse) error              { return nil }
func (s *stubWarehouseRepo) List() ([]*entity.Warehouse, error)          { return s.warehouses, nil }
func (s *stubWarehouseRepo) Delete(string) error                         { return nil }

type stubInventoryRepo struct {
	stats   *entity.InventoryStats
	records []*entity.InventoryRecord
}

func (s *stubInventoryRepo) Count(context.Context, string, repository.InventoryFilter) (int, error) {
	return len(s.records), nil
}
func (s *stubInventoryRepo) Search(context.Context, string, repository.InventoryFilter) ([]*entity.InventoryRecord, error) {
	return s.records, nil
}
func (s *stubInventoryRepo) Categories(context.Context, string) ([]string, error) {
	return nil, nil
}
func (s *stubInventoryRepo) Stats(context.Context, string) (*entity.InventoryStats, error) {
	return s.stats, nil
}

type recordingChatRepo struct {
	created []*entity.ChatMessage
	failErr error
}

func (r *recordingChatRepo) Create(m *entity.ChatMessage) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.created = append(r.created, m)
	return nil
}
func (r *recordingChatRepo) ListByUser(userID string, limit int) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	for _, m := range r.created {
		if len(out) == limit {
			break
		}
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type stubAssistant struct {
	reply string
	err   error
}

func (s *stubAssistant) Reply(_ context.Context, message string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply + message, nil
}

func newChatUC(assistant *stubAssistant) (*ChatUseCase, *recordingChatRepo) {
	warehouses := &stubWarehouseRepo{warehouses: []*entity.Warehouse{
		{ID: "w1", Name: "Chicago DC", City: "Chicago", State: "IL",
			UtilizationPct: decimal.RequireFromString("70"), Status: entity.WarehouseStatusActive},
	}}
	inventory := &stubInventoryRepo{
		stats: &entity.InventoryStats{TotalItems: 1, TotalUnits: 30, LowStockItems: 1},
		records: []*entity.InventoryRecord{
			{Quantity: 30, BinLocation: "A11", Status: entity.InventoryStatusAvailable,
				Product: &entity.Product{SKU: "ELC-IPHONE15-128", Name: "iPhone 15 128GB", Category: "Electronics"}},
		},
	}
	messages := &recordingChatRepo{}
	return NewChatUseCase(warehouses, inventory, messages, assistant, logger.Nop()), messages
}

func TestHandle_InventoryQuestionAnsweredFromDatabase(t *testing.T) {
	uc, messages := newChatUC(&stubAssistant{})

	out, err := uc.Handle(context.Background(), "user-1", "Show me inventory for Chicago DC")
	require.NoError(t, err)
	assert.Contains(t, out.Reply, "📦 **Chicago DC Inventory**")
	assert.Contains(t, out.Reply, "iPhone 15 128GB")
	assert.Contains(t, out.Reply, "⚠️")

	// Both turns persisted, user first.
	require.Len(t, messages.created, 2)
	assert.Equal(t, entity.ChatRoleUser, messages.created[0].Role)
	assert.Equal(t, "Show me inventory for Chicago DC", messages.created[0].Content)
	assert.Equal(t, entity.ChatRoleAssistant, messages.created[1].Role)
	assert.Equal(t, out.Reply, messages.created[1].Content)
}

func TestHandle_UnknownWarehouseNameGetsAHint(t *testing.T) {
	uc, _ := newChatUC(&stubAssistant{})

	out, err := uc.Handle(context.Background(), "user-1", "inventory for denver hub")
	require.NoError(t, err)
	assert.Contains(t, out.Reply, `"denver hub"`)
}

func TestHandle_WarehouseListQuestion(t *testing.T) {
	uc, _ := newChatUC(&stubAssistant{})

	out, err := uc.Handle(context.Background(), "user-1", "list warehouses")
	require.NoError(t, err)
	assert.Contains(t, out.Reply, "🏭 **Warehouse Overview**")
	assert.Contains(t, out.Reply, "Chicago DC")
}

func TestHandle_UnknownIntentFallsBackToAssistant(t *testing.T) {
	uc, _ := newChatUC(&stubAssistant{reply: "AI Response: "})

	out, err := uc.Handle(context.Background(), "user-1", "tell me a joke")
	require.NoError(t, err)
	assert.Equal(t, "AI Response: tell me a joke", out.Reply)
}

func TestHandle_AssistantFailureSurfaces(t *testing.T) {
	uc, messages := newChatUC(&stubAssistant{err: errors.New("upstream down")})

	_, err := uc.Handle(context.Background(), "user-1", "tell me a joke")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assistant fallback")
	// The user turn was still recorded before the failure.
	assert.Len(t, messages.created, 1)
}

func TestHandle_EmptyMessageRejected(t *testing.T) {
	uc, _ := newChatUC(&stubAssistant{})

	_, err := uc.Handle(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHandle_HistoryInsertFailureIsSwallowed(t *testing.T) {
	uc, messages := newChatUC(&stubAssistant{})
	messages.failErr = errors.New("disk full")

	out, err := uc.Handle(context.Background(), "user-1", "list warehouses")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Reply)
}

func TestHistory_ReturnsOnlyTheUsersTurns(t *testing.T) {
	uc, messages := newChatUC(&stubAssistant{})
	_, err := uc.Handle(context.Background(), "user-1", "list warehouses")
	require.NoError(t, err)
	_, err = uc.Handle(context.Background(), "user-2", "list warehouses")
	require.NoError(t, err)
	require.Len(t, messages.created, 4)

	history, err := uc.History("user-1", 0)
	require.NoError(t, err)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, entity.ChatRoleUser, history.Messages[0].Role)
	assert.Equal(t, entity.ChatRoleAssistant, history.Messages[1].Role)
}
