package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-receptionist/utils"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a warm, professional hotel receptionist at Marina Vista Hotel, " +
	"a luxury hotel located in Singapore's Marina Bay area. " +
	"You greet guests politely, help with room reservations, local attractions, " +
	"check-in/check-out information, and answer general questions about the hotel or Singapore. " +
	"Keep your tone friendly, concise, and helpful, as if speaking to an international guest. " +
	"Use a touch of hospitality language, but avoid being overly formal. " +
	"Use the find_rooms and book_room tools for anything involving room availability, " +
	"prices, or reservations; never invent room details."

// maxToolRounds bounds the dispatch loop so a model that keeps chaining
// tool calls cannot spin forever.
const maxToolRounds = 8

// ChatTurn is one prior exchange turn sent by the client. The server keeps
// no conversation state; history rides along with every request.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatService drives the language-model conversation and hands every tool
// call to the adapter. It owns nothing but the loop; the adapter owns the
// tool surface and the booking service owns the data.
type ChatService struct {
	client  *openai.Client
	adapter *ToolAdapter
	model   string
}

func NewChatService(apiKey string, adapter *ToolAdapter) *ChatService {
	cfg := openai.DefaultConfig(apiKey)
	if base := utils.EnvOrDefault("OPENAI_BASE_URL", ""); base != "" {
		cfg.BaseURL = base
	}
	return &ChatService{
		client:  openai.NewClientWithConfig(cfg),
		adapter: adapter,
		model:   utils.EnvOrDefault("OPENAI_MODEL", "gpt-4.1-mini"),
	}
}

func (s *ChatService) Respond(ctx context.Context, history []ChatTurn, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("empty message")
	}

	msgs := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}
	for _, turn := range history {
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		role := openai.ChatMessageRoleUser
		if strings.EqualFold(turn.Role, "assistant") {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})

	for round := 0; round < maxToolRounds; round++ {
		resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:      s.model,
			Messages:   msgs,
			Tools:      s.adapter.Definitions(),
			ToolChoice: "auto",
		})
		if err != nil {
			return "", fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("chat completion returned no choices")
		}

		msg := resp.Choices[0].Message
		msgs = append(msgs, msg)

		// No tool calls -> final assistant message.
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		for _, call := range msg.ToolCalls {
			result := s.adapter.Dispatch(call.Function.Name, call.Function.Arguments)
			msgs = append(msgs, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}

	return "", fmt.Errorf("model did not produce a final reply within %d tool rounds", maxToolRounds)
}
