package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/promptdeck/llmgate/llm"
)

// SendMessageStream implements llm.Provider.SendMessageStream. Each
// stream chunk's visible text is forwarded as one token fragment in
// arrival order; exactly one terminal callback fires.
func (c *Client) SendMessageStream(ctx context.Context, messages []llm.Message, handlers llm.StreamHandlers) error {
	if err := llm.ValidateMessages(messages); err != nil {
		handlers.Error(err)
		return err
	}

	turns, err := buildTurns(messages)
	if err != nil {
		handlers.Error(err)
		return err
	}

	chat, err := c.api.Chats.Create(ctx, c.cfg.DefaultModel, c.generateConfig(turns.system), turns.history)
	if err != nil {
		converted := c.convertError(err)
		handlers.Error(converted)
		return converted
	}

	for chunk, err := range chat.SendMessageStream(ctx, genai.Part{Text: turns.prompt}) {
		if err != nil {
			converted := c.convertError(err)
			handlers.Error(converted)
			return converted
		}
		if fragment := visibleText(chunk); fragment != "" {
			handlers.Token(fragment)
		}
	}

	handlers.Complete()
	return nil
}
