package mcp

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/tools"
)

func TestRenderResult_Success(t *testing.T) {
	result := tools.Result{
		Status: tools.StatusSuccess,
		Data:   map[string]any{"result": "value", "count": 42},
	}

	mcpResult := renderResult(result, log.NewNop())

	if mcpResult.IsError {
		t.Error("renderResult should not set IsError for success status")
	}
	if len(mcpResult.Content) == 0 {
		t.Fatal("renderResult returned empty content")
	}
	textContent, ok := mcpResult.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatal("renderResult content is not TextContent")
	}

	// Data should round-trip as JSON
	var data map[string]any
	if err := json.Unmarshal([]byte(textContent.Text), &data); err != nil {
		t.Fatalf("renderResult text is not JSON: %v\ntext: %s", err, textContent.Text)
	}
	if data["result"] != "value" {
		t.Errorf("data.result = %v, want value", data["result"])
	}
}

func TestRenderResult_Error(t *testing.T) {
	result := tools.Result{
		Status: tools.StatusError,
		Error: &tools.Error{
			Code:    tools.ErrCodeNotFound,
			Message: "task not found: task_42",
		},
	}

	mcpResult := renderResult(result, log.NewNop())

	if !mcpResult.IsError {
		t.Error("renderResult should set IsError for error status")
	}
	textContent, ok := mcpResult.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatal("renderResult content is not TextContent")
	}
	if !strings.Contains(textContent.Text, "[NotFound]") {
		t.Errorf("error text = %q, want the code in brackets", textContent.Text)
	}
	if !strings.Contains(textContent.Text, "task not found: task_42") {
		t.Errorf("error text = %q, want the message", textContent.Text)
	}
}

func TestRenderResult_ErrorWithDetails(t *testing.T) {
	result := tools.Result{
		Status: tools.StatusError,
		Error: &tools.Error{
			Code:    tools.ErrCodeValidation,
			Message: "invalid priority",
			Details: map[string]any{"valid_values": []string{"low", "medium", "high", "critical"}},
		},
	}

	mcpResult := renderResult(result, log.NewNop())

	if !mcpResult.IsError {
		t.Error("renderResult should set IsError for error status")
	}
	text := mcpResult.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "Details:") {
		t.Errorf("error text = %q, want appended details", text)
	}
	if !strings.Contains(text, "valid_values") {
		t.Errorf("error text = %q, want the detail payload", text)
	}
}

func TestRenderData_Nil(t *testing.T) {
	mcpResult := renderData(nil, log.NewNop())

	if mcpResult.IsError {
		t.Error("renderData(nil) should not be an error result")
	}
	textContent, ok := mcpResult.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatal("renderData content is not TextContent")
	}
	if textContent.Text != "" {
		t.Errorf("renderData(nil) text = %q, want empty", textContent.Text)
	}
}

func TestRawArguments(t *testing.T) {
	tests := []struct {
		name string
		args any
		want string
	}{
		{
			name: "raw message passes through",
			args: json.RawMessage(`{"title":"x"}`),
			want: `{"title":"x"}`,
		},
		{
			name: "nil stays nil",
			args: nil,
			want: "",
		},
		{
			name: "decoded map is re-marshaled",
			args: map[string]any{"confirm": true},
			want: `{"confirm":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &mcp.CallToolRequest{
				Params: &mcp.CallToolParams{Name: "x", Arguments: tt.args},
			}
			got := rawArguments(req)
			if string(got) != tt.want {
				t.Errorf("rawArguments() = %q, want %q", got, tt.want)
			}
		})
	}
}
