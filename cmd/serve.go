package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	mcpSdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/kelleyblackmore/jarvis-mcp/internal/app"
	"github.com/kelleyblackmore/jarvis-mcp/internal/config"
	"github.com/kelleyblackmore/jarvis-mcp/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"mcp"},
	Short:   "Start the MCP server on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// runServe loads configuration, assembles the application and serves MCP
// over stdio until SIGINT or SIGTERM cancels the context.
func runServe(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.Setup(ctx, cfg, AppVersion)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			a.Logger.Warn("shutdown error", "error", closeErr)
		}
	}()

	server, err := mcp.NewServer(mcp.Config{
		Name:     cfg.ServerName,
		Version:  AppVersion,
		Registry: a.Registry,
		Logger:   a.Logger,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	if err := server.Run(ctx, &mcpSdk.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server error: %w", err)
	}

	a.Logger.Info("MCP server shut down gracefully")
	return nil
}
