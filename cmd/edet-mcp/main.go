package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "edet/internal/adapters/mcp"
	"edet/internal/bootstrap"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	ctx := context.Background()
	app, err := bootstrap.Open(ctx, *configFlag)
	if err != nil {
		log.Fatalf("edet-mcp: %v", err)
	}
	defer app.Close()

	mcpServer := server.NewMCPServer(
		"edet-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, app.Facade)

	if err := server.ServeStdio(mcpServer); err != nil {
		app.Logger.WithError(err).Error("edet-mcp stopped")
	}
}
