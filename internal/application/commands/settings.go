package commands

import (
	"context"

	"edet/internal/application"
	"edet/internal/application/registry"
	"edet/internal/domain"
)

// SaveSettingsCommand stores the configuration flags
type SaveSettingsCommand struct {
	reg      *registry.SeminarRegistry
	Settings domain.Settings
}

// NewSaveSettingsCommand creates a new SaveSettingsCommand
func NewSaveSettingsCommand(reg *registry.SeminarRegistry, settings domain.Settings) *SaveSettingsCommand {
	return &SaveSettingsCommand{
		reg:      reg,
		Settings: settings,
	}
}

// Execute stamps and stores the settings
func (c *SaveSettingsCommand) Execute(ctx context.Context) (*domain.Settings, error) {
	s := c.Settings
	s.Timestamp = c.reg.Now()

	entries := application.Entries{}
	if err := entries.Put(domain.KeySettings, s); err != nil {
		return nil, err
	}
	if err := application.Save(ctx, c.reg.Store(), entries); err != nil {
		return nil, err
	}

	c.reg.Logger().WithField("settings", s).Debug("settings saved")
	return &s, nil
}

// LoadSettingsCommand reads the configuration flags
type LoadSettingsCommand struct {
	reg *registry.SeminarRegistry
}

// NewLoadSettingsCommand creates a new LoadSettingsCommand
func NewLoadSettingsCommand(reg *registry.SeminarRegistry) *LoadSettingsCommand {
	return &LoadSettingsCommand{reg: reg}
}

// Execute returns the stored settings, or the zero value if none were saved
func (c *LoadSettingsCommand) Execute(ctx context.Context) (*domain.Settings, error) {
	vals, err := application.Load(ctx, c.reg.Store(), domain.KeySettings)
	if err != nil {
		return nil, err
	}

	var s domain.Settings
	if _, err := vals.Decode(domain.KeySettings, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
