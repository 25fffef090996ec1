package ai

import (
	"context"
	"fmt"

	"github.com/blueshipsync/shipsync-api/internal/application/ports"
)

// Compile-time check that EchoService implements AssistantService.
var _ ports.AssistantService = (*EchoService)(nil)

// EchoService placeholder AssistantService: echoes the message back with an
// "AI Response:" prefix. Stands in until a real LLM adapter is wired; the
// port keeps the swap local to this package.
type EchoService struct{}

// NewEchoService builds the stub.
func NewEchoService() *EchoService { return &EchoService{} }

// Reply echoes the message.
func (s *EchoService) Reply(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("AI Response: %s", message), nil
}
