package drive

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"edet/internal/ports"
)

// FolderMimeType is the MIME type Drive uses for folders
const FolderMimeType = "application/vnd.google-apps.folder"

// Provider implements ports.FolderProvider on Google Drive
type Provider struct {
	svc *drive.Service
	// rootID is used when no parent is given; "root" is the user's My Drive
	rootID string
}

var _ ports.FolderProvider = (*Provider)(nil)

// NewProvider builds a Drive client from client options
// (credentials file, API key, endpoint, HTTP client)
func NewProvider(ctx context.Context, rootID string, opts ...option.ClientOption) (*Provider, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive client: %w", err)
	}
	if rootID == "" {
		rootID = "root"
	}
	return &Provider{svc: svc, rootID: rootID}, nil
}

// Name identifies the provider in logs and status output
func (p *Provider) Name() string {
	return "drive"
}

// CreateFolder returns the id of the folder called name under parentID,
// creating it when Drive has none
func (p *Provider) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("folder name is required")
	}
	if parentID == "" {
		parentID = p.rootID
	}

	existing, err := p.findFolder(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	if existing != "" {
		return existing, nil
	}

	created, err := p.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: FolderMimeType,
		Parents:  []string{parentID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create drive folder %q: %w", name, err)
	}
	return created.Id, nil
}

func (p *Provider) findFolder(ctx context.Context, name, parentID string) (string, error) {
	list, err := p.svc.Files.List().
		Q(folderQuery(name, parentID)).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to search drive folder %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].Id, nil
}

func folderQuery(name, parentID string) string {
	return fmt.Sprintf("name = '%s' and mimeType = '%s' and '%s' in parents and trashed = false",
		escape(name), FolderMimeType, escape(parentID))
}

// escape quotes a value for the Drive query language
func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
