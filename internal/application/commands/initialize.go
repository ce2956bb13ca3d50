package commands

import (
	"context"

	"edet/internal/application/registry"
)

// InitializeCommand creates the main folder and all seminar folders
type InitializeCommand struct {
	reg *registry.SeminarRegistry
}

// NewInitializeCommand creates a new InitializeCommand
func NewInitializeCommand(reg *registry.SeminarRegistry) *InitializeCommand {
	return &InitializeCommand{reg: reg}
}

// Execute runs the initialize command
func (c *InitializeCommand) Execute(ctx context.Context) (*registry.InitializeResult, error) {
	return c.reg.InitializeStructure(ctx)
}
