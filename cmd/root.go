// Package cmd provides the jarvis command line interface.
//
// The root command starts the MCP server on stdio, the transport MCP
// hosts use when they launch a server binary. Logs go to stderr so the
// protocol stream on stdout stays clean.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jarvis",
	Short: "Jarvis - a personal assistant MCP server",
	Long: `Jarvis is a Model Context Protocol server that gives MCP hosts a
personal assistant: task and reminder tracking, a daily schedule, a
simulated smart home with a security journal, weather and system
diagnostics, and utilities for calculation and unit conversion.

Run without arguments to start the server on stdio.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand starts the server, the way MCP hosts invoke it.
		return runServe(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
