package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"edet/internal/application"
	"edet/internal/application/facade"
	"edet/internal/domain"
)

// RegisterTools adds every configuration tool to the MCP server.
func RegisterTools(s *server.MCPServer, f *facade.ConfigurationFacade) {
	s.AddTool(listSeminarsTool(), listSeminarsHandler(f))
	s.AddTool(initializeTool(), initializeHandler(f))
	s.AddTool(connectTool(), connectHandler(f))
	s.AddTool(getIntegrationTool(), getIntegrationHandler(f))
	s.AddTool(organizeTool(), organizeHandler(f))
	s.AddTool(statusTool(), statusHandler(f))
	s.AddTool(getSettingsTool(), getSettingsHandler(f))
	s.AddTool(saveSettingsTool(), saveSettingsHandler(f))
}

// --- list_seminars ---

func listSeminarsTool() mcp.Tool {
	return mcp.NewTool("list_seminars",
		mcp.WithDescription("List the seven EDET seminars with their ids and folder names."),
	)
}

func listSeminarsHandler(f *facade.ConfigurationFacade) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return envelope(f.ListSeminars())
	}
}

// --- initialize_structure ---

func initializeTool() mcp.Tool {
	return mcp.NewTool("initialize_structure",
		mcp.WithDescription("Create the main folder and one subfolder per seminar. Safe to run again."),
	)
}

func initializeHandler(f *facade.ConfigurationFacade) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return envelope(f.Initialize(ctx))
	}
}

// --- connect_integration ---

func connectTool() mcp.Tool {
	return mcp.NewTool("connect_integration",
		mcp.WithDescription("Link a seminar folder to the knowledge-base integration. Requires an initialized structure."),
		mcp.WithNumber("seminar_id",
			mcp.Description("Seminar id (1-7)"),
			mcp.Required(),
		),
	)
}

func connectHandler(f *facade.ConfigurationFacade) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := seminarID(req)
		if err != nil {
			return toolError(err)
		}
		return envelope(f.ConnectIntegration(ctx, id))
	}
}

// --- get_integration ---

func getIntegrationTool() mcp.Tool {
	return mcp.NewTool("get_integration",
		mcp.WithDescription("Show the stored integration of a seminar."),
		mcp.WithNumber("seminar_id",
			mcp.Description("Seminar id (1-7)"),
			mcp.Required(),
		),
	)
}

func getIntegrationHandler(f *facade.ConfigurationFacade) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := seminarID(req)
		if err != nil {
			return toolError(err)
		}
		return envelope(f.GetIntegration(ctx, id))
	}
}

// --- organize_resources ---

func organizeTool() mcp.Tool {
	return mcp.NewTool("organize_resources",
		mcp.WithDescription("Record a batch of files as resources of a seminar."),
		mcp.WithNumber("seminar_id",
			mcp.Description("Seminar id (1-7)"),
			mcp.Required(),
		),
		mcp.WithArray("files",
			mcp.Description("Files to organize: objects with name, size and type"),
			mcp.Required(),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{"type": "string"},
					"size": map[string]any{"type": "number"},
					"type": map[string]any{"type": "string"},
				},
				"required": []string{"name"},
			}),
		),
	)
}

func organizeHandler(f *facade.ConfigurationFacade) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := seminarID(req)
		if err != nil {
			return toolError(err)
		}

		files, err := decodeFiles(req.GetArguments()["files"])
		if err != nil {
			return toolError(err)
		}
		return envelope(f.OrganizeResources(ctx, files, id))
	}
}

// --- get_status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("get_status",
		mcp.WithDescription("Report whether the folder structure is initialized, with the main folder id and last sync time."),
	)
}

func statusHandler(f *facade.ConfigurationFacade) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return envelope(f.GetStatus(ctx))
	}
}

// --- get_settings / save_settings ---

func getSettingsTool() mcp.Tool {
	return mcp.NewTool("get_settings",
		mcp.WithDescription("Show the stored configuration flags."),
	)
}

func getSettingsHandler(f *facade.ConfigurationFacade) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return envelope(f.LoadSettings(ctx))
	}
}

func saveSettingsTool() mcp.Tool {
	return mcp.NewTool("save_settings",
		mcp.WithDescription("Store the configuration flags. Omitted flags keep their stored value."),
		mcp.WithBoolean("auto_organize", mcp.Description("Organize new files automatically")),
		mcp.WithBoolean("enable_rag", mcp.Description("Enable the knowledge-base integration")),
		mcp.WithBoolean("sync_drive", mcp.Description("Sync with the remote drive")),
	)
}

func saveSettingsHandler(f *facade.ConfigurationFacade) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		current, err := f.LoadSettings(ctx).Unwrap()
		if err != nil {
			return toolError(err)
		}

		current.AutoOrganize = req.GetBool("auto_organize", current.AutoOrganize)
		current.EnableRAG = req.GetBool("enable_rag", current.EnableRAG)
		current.SyncDrive = req.GetBool("sync_drive", current.SyncDrive)

		return envelope(f.SaveSettings(ctx, current))
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// envelope renders a Result as JSON; failures are flagged as tool errors
func envelope[T any](r application.Result[T]) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return toolError(err)
	}
	if !r.Success {
		return mcp.NewToolResultError(string(data)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// seminarID reads seminar_id, rejecting fractional numbers
func seminarID(req mcp.CallToolRequest) (int, error) {
	v, err := req.RequireFloat("seminar_id")
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("seminar_id must be an integer, got %v", v)
	}
	return int(v), nil
}

func decodeFiles(raw any) ([]domain.FileDescriptor, error) {
	if raw == nil {
		return nil, fmt.Errorf("files is required")
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid files: %w", err)
	}
	files := []domain.FileDescriptor{}
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("invalid files: %w", err)
	}
	return files, nil
}
