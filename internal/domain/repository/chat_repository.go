package repository

import "github.com/blueshipsync/shipsync-api/internal/domain/entity"

// ChatRepository persistence port for chat history (DIP).
type ChatRepository interface {
	Create(message *entity.ChatMessage) error
	ListByUser(userID string, limit int) ([]*entity.ChatMessage, error)
}
