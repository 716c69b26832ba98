package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/tools"
)

// rawArguments extracts the undecoded JSON arguments from a tool call.
// The SDK keeps arguments raw for low-level handlers; marshal anything
// else back to JSON so the registry always sees one input shape.
func rawArguments(req *mcp.CallToolRequest) json.RawMessage {
	switch args := req.Params.Arguments.(type) {
	case nil:
		return nil
	case json.RawMessage:
		return args
	default:
		data, err := json.Marshal(args)
		if err != nil {
			return nil
		}
		return data
	}
}

// renderResult converts a registry result to protocol content.
// Tool failures become IsError text results rather than protocol errors,
// so clients can hand them back to the model for recovery.
func renderResult(result tools.Result, logger log.Logger) *mcp.CallToolResult {
	if result.Status == tools.StatusError {
		errorText := fmt.Sprintf("[%s] %s", result.Error.Code, result.Error.Message)
		if result.Error.Details != nil {
			detailsJSON, err := json.Marshal(result.Error.Details)
			if err != nil {
				// Log it, don't leak marshal internals to the client
				logger.Warn("marshaling error details", "error", err)
			} else {
				errorText += fmt.Sprintf("\nDetails: %s", string(detailsJSON))
			}
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: errorText}},
			IsError: true,
		}
	}

	return renderData(result.Data, logger)
}

// renderData converts arbitrary data to MCP text content via JSON marshaling.
// This is the simple, unified approach: all data becomes JSON, clients parse it.
func renderData(data any, logger log.Logger) *mcp.CallToolResult {
	if data == nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: ""}},
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		logger.Error("marshaling tool data", "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "marshal error"}},
			IsError: true,
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}
}
