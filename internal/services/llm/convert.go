package llm

import (
	"fmt"

	"github.com/ternarybob/peto/internal/interfaces"
)

// splitSystem validates a conversation and separates the first system message
// from the user/assistant turns. Both providers take the system prompt as a
// dedicated parameter rather than an in-band message.
func splitSystem(messages []interfaces.Message) ([]interfaces.Message, string, error) {
	if len(messages) == 0 {
		return nil, "", fmt.Errorf("messages cannot be empty")
	}

	hasUserMessage := false
	for _, msg := range messages {
		if msg.Role == "user" {
			hasUserMessage = true
			break
		}
	}
	if !hasUserMessage {
		return nil, "", fmt.Errorf("at least one message must have role 'user'")
	}

	turns := make([]interfaces.Message, 0, len(messages))
	var systemText string
	for _, msg := range messages {
		if msg.Role == "system" {
			if systemText == "" {
				systemText = msg.Content
			}
			continue
		}
		turns = append(turns, msg)
	}

	return turns, systemText, nil
}
