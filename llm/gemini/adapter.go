package gemini

import (
	"strings"

	"google.golang.org/genai"

	"github.com/promptdeck/llmgate/llm"
)

// thinkingInstruction is appended to the outgoing prompt when a
// reasoning trace is requested, since Gemini exposes no enumerable
// reasoning field on this surface.
const thinkingInstruction = "Think through the problem step by step inside a " +
	"```thinking fenced code block, then give only your final answer after the " +
	"closing fence."

// turns is the provider-specific reshaping of a conversation: system
// messages concatenated into a separate instruction, prior exchanges as
// chat history, and the final user message as the new turn.
type turns struct {
	system  string
	history []*genai.Content
	prompt  string
}

// buildTurns reformats a conversation for the Gemini chat surface. The
// conversation must end with a user message, which becomes the prompt
// sent against the accumulated history.
func buildTurns(messages []llm.Message) (turns, error) {
	var t turns
	var system []string

	last := len(messages) - 1
	for last >= 0 && messages[last].Role == llm.RoleSystem {
		last--
	}
	if last < 0 || messages[last].Role != llm.RoleUser {
		return t, llm.NewValidationError("conversation must end with a user message", "messages")
	}

	for i, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			if content := strings.TrimSpace(msg.Content); content != "" {
				system = append(system, content)
			}
		case llm.RoleAssistant:
			t.history = append(t.history, &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		case llm.RoleUser:
			if i == last {
				t.prompt = msg.Content
				continue
			}
			t.history = append(t.history, &genai.Content{
				Role:  genai.RoleUser,
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		}
	}

	t.system = strings.Join(system, "\n\n")
	return t, nil
}

// visibleText flattens the text parts of the first candidate.
func visibleText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
