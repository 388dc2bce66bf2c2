// Package ai provides the completion gateway interface and implementations.
package ai

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// MockGateway implements Gateway with canned responses. It backs
// AI_MOCK_MODE for local work without an API key and doubles as a test
// stub elsewhere in the repository.
type MockGateway struct {
	logger *zap.Logger
}

// NewMockGateway creates a mock completion gateway.
func NewMockGateway(logger *zap.Logger) *MockGateway {
	return &MockGateway{
		logger: logger.Named("mock_gateway"),
	}
}

// Complete returns a canned response shaped after the prompt kind so the
// downstream parsers still have something to chew on.
func (m *MockGateway) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.logger.Debug("mock completion call",
		zap.Int("system_len", len(req.System)),
		zap.Int("user_len", len(req.User)),
	)

	switch {
	case strings.Contains(req.System, "eligibility checklists"):
		return "1. Be a legal resident\n2. Meet the income threshold\n3. Provide valid identification", nil
	case strings.Contains(req.System, "professional translator"):
		return "[mock translation] " + req.User, nil
	default:
		return "This is a mock response. Set AI_MOCK_MODE=false and configure AI_API_KEY to enable real analysis.", nil
	}
}
