package openai

import (
	"context"
	"errors"
	"io"

	"github.com/promptdeck/llmgate/llm"
)

// SendMessageStream implements llm.Provider.SendMessageStream. One
// OnToken call is made per incremental content fragment, in wire order;
// exactly one terminal callback fires. A failure is delivered through
// OnError and also returned so pull-style consumers observe it.
func (c *Client) SendMessageStream(ctx context.Context, messages []llm.Message, handlers llm.StreamHandlers) error {
	if err := llm.ValidateMessages(messages); err != nil {
		handlers.Error(err)
		return err
	}

	req := c.buildRequest(messages)
	req.Stream = true

	stream, err := c.api.CreateChatCompletionStream(ctx, req)
	if err != nil {
		converted := c.convertError(err)
		handlers.Error(converted)
		return converted
	}
	defer stream.Close()

	for {
		frame, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			handlers.Complete()
			return nil
		}
		if err != nil {
			converted := c.convertError(err)
			handlers.Error(converted)
			return converted
		}
		if len(frame.Choices) == 0 {
			continue
		}
		if fragment := frame.Choices[0].Delta.Content; fragment != "" {
			handlers.Token(fragment)
		}
	}
}
