package openai

import (
	"strings"

	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"github.com/promptdeck/llmgate/llm"
	"github.com/promptdeck/llmgate/llm/thinking"
)

// reasonerInstruction is injected as a system message for dedicated
// reasoner models, asking them to fence their reasoning so the marker
// scanner can split it from the answer.
const reasonerInstruction = "Before giving your final answer, write out your " +
	"step-by-step reasoning inside a ```thinking fenced code block, then state " +
	"the final answer after the closing fence."

// toChatMessages maps a provider-neutral conversation onto the
// chat-completion payload. Roles map one to one.
func toChatMessages(messages []llm.Message) []openai.ChatCompletionMessage {
	return lo.Map(messages, func(m llm.Message, _ int) openai.ChatCompletionMessage {
		return openai.ChatCompletionMessage{
			Role:    toChatRole(m.Role),
			Content: m.Content,
		}
	})
}

func toChatRole(role llm.MessageRole) string {
	switch role {
	case llm.RoleSystem:
		return openai.ChatMessageRoleSystem
	case llm.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}

// thinkingToolDefinition builds the show_reasoning function definition
// attached for models that support function calling.
func thinkingToolDefinition() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        thinking.ToolName,
			Description: "Record your step-by-step reasoning before answering.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					thinking.ToolThoughtsField: map[string]any{
						"type":        "string",
						"description": "The reasoning behind the answer.",
					},
				},
				"required": []string{thinking.ToolThoughtsField},
			},
		},
	}
}

// rawResponse builds the helper's view of one completion message,
// carrying the native reasoning field and any show_reasoning tool call.
func rawResponse(msg openai.ChatCompletionMessage) thinking.RawResponse {
	raw := thinking.RawResponse{
		Text:      msg.Content,
		Reasoning: msg.ReasoningContent,
	}
	for _, call := range msg.ToolCalls {
		if call.Function.Name == thinking.ToolName {
			raw.ToolName = call.Function.Name
			raw.ToolArgs = call.Function.Arguments
			break
		}
	}
	return raw
}

// toolDenyList names vendor+model substrings known to reject tool
// definitions (reasoning-tuned models typically do). An empty vendor
// matches every vendor.
var toolDenyList = []struct {
	vendor string
	model  string
}{
	{"deepseek", "reasoner"},
	{"deepseek", "r1"},
	{"ollama", "r1"},
	{"", "o1-mini"},
	{"", "o1-preview"},
	{"", "qwq"},
}

// supportsFunctionCalling reports whether tool definitions may be sent
// to the given vendor+model.
func supportsFunctionCalling(vendor, model string) bool {
	vendor = strings.ToLower(vendor)
	model = strings.ToLower(model)
	for _, deny := range toolDenyList {
		if deny.vendor != "" && !strings.Contains(vendor, deny.vendor) {
			continue
		}
		if strings.Contains(model, deny.model) {
			return false
		}
	}
	return true
}

// reasonerMarkers identify dedicated reasoner model variants by name.
var reasonerMarkers = []string{"reasoner", "-r1", "r1-", "qwq", "-think"}

// isReasonerModel reports whether the model is a dedicated reasoner
// variant.
func isReasonerModel(model string) bool {
	model = strings.ToLower(model)
	for _, marker := range reasonerMarkers {
		if strings.Contains(model, marker) {
			return true
		}
	}
	return false
}
