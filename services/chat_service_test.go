package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolCallResponse = `{
	"id": "chatcmpl-1", "object": "chat.completion", "created": 1, "model": "gpt-4.1-mini",
	"choices": [{
		"index": 0, "finish_reason": "tool_calls",
		"message": {
			"role": "assistant", "content": "",
			"tool_calls": [{
				"id": "call_1", "type": "function",
				"function": {"name": "find_rooms", "arguments": "{\"room_type\":\"Suite\"}"}
			}]
		}
	}]
}`

const finalResponse = `{
	"id": "chatcmpl-2", "object": "chat.completion", "created": 2, "model": "gpt-4.1-mini",
	"choices": [{
		"index": 0, "finish_reason": "stop",
		"message": {"role": "assistant", "content": "We have one suite available."}
	}]
}`

// fakeCompletions stands in for the provider: first call returns a
// find_rooms tool call, second call returns the final assistant message.
func fakeCompletions(t *testing.T, requests *[][]byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		*requests = append(*requests, body)

		w.Header().Set("Content-Type", "application/json")
		if len(*requests) == 1 {
			io.WriteString(w, toolCallResponse)
			return
		}
		io.WriteString(w, finalResponse)
	}
}

func newChatService(t *testing.T, handler http.HandlerFunc) *ChatService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("OPENAI_BASE_URL", srv.URL+"/v1")

	adapter, _, _ := newAdapter(t)
	return NewChatService("test-key", adapter)
}

func TestRespondRunsToolLoop(t *testing.T) {
	var requests [][]byte
	svc := newChatService(t, fakeCompletions(t, &requests))

	reply, err := svc.Respond(context.Background(), nil, "Do you have any suites?")
	require.NoError(t, err)
	assert.Equal(t, "We have one suite available.", reply)
	require.Len(t, requests, 2)

	// The second request must carry the tool result back to the model.
	var second struct {
		Messages []struct {
			Role       string `json:"role"`
			Content    string `json:"content"`
			ToolCallID string `json:"tool_call_id"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(requests[1], &second))

	var sawToolResult bool
	for _, m := range second.Messages {
		if m.Role == "tool" && m.ToolCallID == "call_1" {
			sawToolResult = true
			assert.Contains(t, m.Content, "rooms")
		}
	}
	assert.True(t, sawToolResult, "tool result message missing from follow-up request")
}

func TestRespondCarriesHistory(t *testing.T) {
	var requests [][]byte
	svc := newChatService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, finalResponse)
	})

	history := []ChatTurn{
		{Role: "user", Content: "Hello"},
		{Role: "assistant", Content: "Welcome to Marina Vista Hotel!"},
	}
	_, err := svc.Respond(context.Background(), history, "Any suites?")
	require.NoError(t, err)
	require.Len(t, requests, 1)

	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(requests[0], &req))
	// system + 2 history turns + current message
	require.Len(t, req.Messages, 4)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "assistant", req.Messages[2].Role)
	assert.Equal(t, "Any suites?", req.Messages[3].Content)
}

func TestRespondEmptyMessage(t *testing.T) {
	svc := newChatService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty message")
	})

	_, err := svc.Respond(context.Background(), nil, "   ")
	assert.Error(t, err)
}

func TestRespondBoundsToolRounds(t *testing.T) {
	svc := newChatService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, toolCallResponse)
	})

	_, err := svc.Respond(context.Background(), nil, "book everything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool rounds")
}
