// Package mcp implements a Model Context Protocol (MCP) server.
//
// The MCP server exposes the jarvis assistant over the Model Context
// Protocol, enabling integration with Claude Desktop, Cursor, and other
// MCP clients. External LLM tools call the assistant's capabilities
// (tasks, reminders, smart home control, security reporting, utilities)
// through the standardized protocol interface.
//
// # Architecture
//
// Dispatch stays in the tool registry; this package only adapts it to
// the protocol:
//
//	MCP Client (Claude Desktop, Cursor, etc.)
//	     |
//	     | (MCP protocol over stdio)
//	     |
//	     v
//	Server (MCP SDK)
//	     |
//	     +-- tools.Registry (validation, tracing, dispatch)
//	     |        |
//	     |        +-- assistant toolset (greet, status, time, briefing)
//	     |        +-- planner toolset (tasks, reminders, schedule)
//	     |        +-- home toolset (devices, security)
//	     |        +-- utility toolset (weather, calculate, convert)
//	     |
//	     +-- Prompts (morning_briefing, security_check, system_diagnostic)
//
// Every registered tool is exposed with its JSON schema, so clients can
// validate arguments before calling. The raw SDK handler hands arguments
// straight to the registry, which validates, decodes and invokes.
//
// # Error Handling
//
// The server distinguishes between two types of errors:
//
//   - Protocol errors: unknown tool names or malformed requests.
//     The SDK returns these as JSON-RPC errors.
//
//   - Tool errors: validation failures, missing entities, failed
//     computations. These come back as successful responses with
//     IsError=true and a "[Code] message" text body, so clients can
//     surface them to the model for recovery.
//
// # Thread Safety
//
// The server is safe for concurrent use. The underlying transport and
// message handling is managed by the MCP SDK; the registry and the
// stores behind it guard their own state.
package mcp
