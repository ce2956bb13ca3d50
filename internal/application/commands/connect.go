package commands

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"edet/internal/application"
	"edet/internal/application/registry"
	"edet/internal/domain"
)

// ConnectResult contains the result of connecting a seminar integration
type ConnectResult struct {
	Seminar string                   `json:"seminario"`
	Config  domain.IntegrationConfig `json:"notebookConfig"`
	Message string                   `json:"message"`
}

// ConnectIntegrationCommand links a seminar folder to the knowledge-base integration
type ConnectIntegrationCommand struct {
	reg       *registry.SeminarRegistry
	SeminarID int
}

// NewConnectIntegrationCommand creates a new ConnectIntegrationCommand
func NewConnectIntegrationCommand(reg *registry.SeminarRegistry, seminarID int) *ConnectIntegrationCommand {
	return &ConnectIntegrationCommand{
		reg:       reg,
		SeminarID: seminarID,
	}
}

// Validate checks the seminar exists
func (c *ConnectIntegrationCommand) Validate() error {
	_, err := application.ResolveSeminar(c.SeminarID)
	return err
}

// Execute runs the connect command. The stored record is replaced, not merged.
func (c *ConnectIntegrationCommand) Execute(ctx context.Context) (*ConnectResult, error) {
	seminar, err := c.reg.FindSeminar(c.SeminarID)
	if err != nil {
		return nil, err
	}

	folderID, found, err := c.reg.LookupFolder(ctx, seminar.FolderName)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &application.NotInitializedError{
			What:   "folder " + seminar.FolderName,
			Reason: "initialize the structure first",
		}
	}

	cfg := domain.IntegrationConfig{
		FolderID:    folderID,
		SeminarID:   seminar.ID,
		SeminarName: seminar.DisplayName,
		RAGEnabled:  true,
		Timestamp:   c.reg.Now(),
	}

	entries := application.Entries{}
	if err := entries.Put(domain.IntegrationKey(seminar.ID), cfg); err != nil {
		return nil, err
	}
	if err := application.Save(ctx, c.reg.Store(), entries); err != nil {
		return nil, err
	}

	c.reg.Logger().WithFields(logrus.Fields{
		"seminar_id": seminar.ID,
		"folder_id":  folderID,
	}).Info("integration connected")

	return &ConnectResult{
		Seminar: seminar.DisplayName,
		Config:  cfg,
		Message: fmt.Sprintf("Connected %s (folder %s)", seminar.DisplayName, folderID),
	}, nil
}

// GetIntegrationCommand reads back the stored integration of a seminar
type GetIntegrationCommand struct {
	reg       *registry.SeminarRegistry
	SeminarID int
}

// NewGetIntegrationCommand creates a new GetIntegrationCommand
func NewGetIntegrationCommand(reg *registry.SeminarRegistry, seminarID int) *GetIntegrationCommand {
	return &GetIntegrationCommand{
		reg:       reg,
		SeminarID: seminarID,
	}
}

// Execute runs the get integration command
func (c *GetIntegrationCommand) Execute(ctx context.Context) (*domain.IntegrationConfig, error) {
	seminar, err := c.reg.FindSeminar(c.SeminarID)
	if err != nil {
		return nil, err
	}

	key := domain.IntegrationKey(seminar.ID)
	vals, err := application.Load(ctx, c.reg.Store(), key)
	if err != nil {
		return nil, err
	}

	var cfg domain.IntegrationConfig
	found, err := vals.Decode(key, &cfg)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &application.NotInitializedError{What: "integration for " + seminar.DisplayName}
	}
	return &cfg, nil
}
