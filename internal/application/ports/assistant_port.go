package ports

import "context"

// AssistantService outbound port for free-form assistant replies, used when
// no structured intent matches a chat message. Any adapter (LLM provider,
// echo stub, mock) implements this contract; the application layer only
// knows the port (DIP).
type AssistantService interface {
	// Reply answers one message. The context should carry a timeout so a
	// slow external call never blocks the chat endpoint.
	Reply(ctx context.Context, message string) (string, error)
}
