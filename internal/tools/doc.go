// Package tools implements the jarvis tool catalogue.
//
// # Overview
//
// Every capability the server exposes is a named tool with a JSON
// schema and a typed handler. The Registry maps names to handlers,
// validates raw arguments against the schema before decoding, and
// normalizes every outcome into the shared Result envelope.
//
// # Architecture
//
// Tools are grouped into toolsets by concern:
//   - Assistant: greeting, server status, time and the daily briefing
//   - Planner: tasks, reminders and the event schedule
//   - Home: smart-home device listing, control and security
//   - Utility: weather, the calculator and unit conversion
//
// Each toolset is a plain struct over its collaborators with one
// method per tool. A matching Register function derives the input
// schemas and adds the handlers to a Registry.
//
// # Error Handling
//
// Handlers never return Go errors. Business failures (an id that does
// not exist, a rejected argument, a malformed expression) ride inside
// Result.Error with a stable code, so every invocation produces
// exactly one response and the host process never sees a fault.
package tools
