package commands

import (
	"context"
	"time"

	"edet/internal/application"
	"edet/internal/application/registry"
	"edet/internal/domain"
)

// StatusCommand reads the initialization state
type StatusCommand struct {
	reg *registry.SeminarRegistry
}

// NewStatusCommand creates a new StatusCommand
func NewStatusCommand(reg *registry.SeminarRegistry) *StatusCommand {
	return &StatusCommand{reg: reg}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context) (*domain.StatusSnapshot, error) {
	vals, err := application.Load(ctx, c.reg.Store(),
		domain.KeyInitialized,
		domain.KeyMainFolderID,
		domain.KeyLastSync,
	)
	if err != nil {
		return nil, err
	}

	snap := &domain.StatusSnapshot{
		Seminars:      c.reg.ListSeminars(),
		TotalSeminars: domain.SeminarCount(),
	}
	if _, err := vals.Decode(domain.KeyInitialized, &snap.Initialized); err != nil {
		return nil, err
	}
	if _, err := vals.Decode(domain.KeyMainFolderID, &snap.MainFolderID); err != nil {
		return nil, err
	}

	var lastSync time.Time
	found, err := vals.Decode(domain.KeyLastSync, &lastSync)
	if err != nil {
		return nil, err
	}
	if found {
		snap.LastSync = &lastSync
	}

	return snap, nil
}
