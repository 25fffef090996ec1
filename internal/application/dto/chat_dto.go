package dto

import "time"

// ChatRequest one user message to the dashboard assistant.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatMessageResponse one stored chat turn.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatResponse the assistant's reply to one message.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHistoryResponse recent chat turns, oldest first.
type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}
