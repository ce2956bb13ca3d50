package commands

import (
	"context"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"edet/internal/application"
	"edet/internal/application/registry"
	"edet/internal/domain"
)

// OrganizeResourcesCommand routes downloaded files to a seminar folder and
// stores the resulting record
type OrganizeResourcesCommand struct {
	reg       *registry.SeminarRegistry
	Files     []domain.FileDescriptor
	SeminarID int
}

// NewOrganizeResourcesCommand creates a new OrganizeResourcesCommand
func NewOrganizeResourcesCommand(reg *registry.SeminarRegistry, files []domain.FileDescriptor, seminarID int) *OrganizeResourcesCommand {
	return &OrganizeResourcesCommand{
		reg:       reg,
		Files:     files,
		SeminarID: seminarID,
	}
}

// Validate checks the seminar exists and a file list was given
func (c *OrganizeResourcesCommand) Validate() error {
	if _, err := application.ResolveSeminar(c.SeminarID); err != nil {
		return err
	}
	if c.Files == nil {
		return &application.ValidationError{
			Field:   "files",
			Message: "files is required",
		}
	}
	return nil
}

// Execute runs the organize command. Input order is preserved; size and
// type are passed through untouched.
func (c *OrganizeResourcesCommand) Execute(ctx context.Context) (*domain.OrganizationRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	seminar, err := c.reg.FindSeminar(c.SeminarID)
	if err != nil {
		return nil, err
	}

	processed := lo.Map(c.Files, func(f domain.FileDescriptor, _ int) domain.ProcessedFile {
		return domain.RouteFile(f, seminar)
	})

	record := &domain.OrganizationRecord{
		Seminar:        seminar.DisplayName,
		SeminarID:      seminar.ID,
		ProcessedFiles: processed,
		TotalFiles:     len(processed),
		Timestamp:      c.reg.Now(),
	}

	entries := application.Entries{}
	if err := entries.Put(domain.ResourcesKey(seminar.ID), record); err != nil {
		return nil, err
	}
	if err := application.Save(ctx, c.reg.Store(), entries); err != nil {
		return nil, err
	}

	c.reg.Logger().WithFields(logrus.Fields{
		"seminar_id": seminar.ID,
		"files":      record.TotalFiles,
	}).Info("resources organized")

	return record, nil
}
