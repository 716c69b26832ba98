package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Prompt names exposed by the server.
const (
	// MorningBriefingPrompt guides a client through the daily overview.
	MorningBriefingPrompt = "morning_briefing"
	// SecurityCheckPrompt guides a client through a security review.
	SecurityCheckPrompt = "security_check"
	// SystemDiagnosticPrompt guides a client through a health check.
	SystemDiagnosticPrompt = "system_diagnostic"
)

// registerPrompts adds the built-in prompt templates. Prompts are
// pre-written user turns: the client fills arguments, the model answers
// by calling the referenced tools.
func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        MorningBriefingPrompt,
		Description: "Start the day: daily briefing with weather, open tasks, today's schedule and the security posture.",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "location",
				Description: "Location for the weather portion of the briefing",
				Required:    false,
			},
		},
	}, s.morningBriefing)

	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        SecurityCheckPrompt,
		Description: "Review the home security posture: locks, cameras and recent alerts.",
	}, s.securityCheck)

	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        SystemDiagnosticPrompt,
		Description: "Check server health: diagnostics, store sizes and anything that needs attention.",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "detail_level",
				Description: "How deep to go: summary (default) or full",
				Required:    false,
			},
		},
	}, s.systemDiagnostic)

	s.logger.Debug("registered MCP prompts", "count", 3)
}

func (s *Server) morningBriefing(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	location := req.Params.Arguments["location"]

	text := "Good morning, JARVIS. Give me my morning briefing"
	if location != "" {
		text += fmt.Sprintf(" for %s", location)
	}
	text += ". Use jarvis_daily_briefing for the overview, then follow up with " +
		"jarvis_task_list (status: pending) if any open tasks need detail. " +
		"Keep it short and lead with anything that needs my attention."

	return &mcp.GetPromptResult{
		Description: "Morning briefing request",
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: text}},
		},
	}, nil
}

func (s *Server) securityCheck(_ context.Context, _ *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	text := "JARVIS, run a security check. Call jarvis_security_status for the " +
		"overall posture, and if anything is unsecured, use jarvis_smart_home_list " +
		"(type: lock, then type: camera) to identify the devices. Summarize what " +
		"is secured, what is not, and any recent alerts worth knowing about."

	return &mcp.GetPromptResult{
		Description: "Security review request",
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: text}},
		},
	}, nil
}

func (s *Server) systemDiagnostic(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	detail := req.Params.Arguments["detail_level"]
	if detail == "" {
		detail = "summary"
	}

	text := fmt.Sprintf("JARVIS, run a system diagnostic at %s detail. Call "+
		"jarvis_status for host metrics and store sizes. Flag anything unusual: "+
		"high CPU or memory, growing latency, or stores that look off.", detail)

	return &mcp.GetPromptResult{
		Description: "System diagnostic request",
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: text}},
		},
	}, nil
}
