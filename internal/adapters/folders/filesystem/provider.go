package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"edet/internal/ports"
)

const readmeName = "README.md"

// Provider implements ports.FolderProvider as directories under a root.
// A folder id is the slash-separated path relative to the root.
type Provider struct {
	root string
}

var _ ports.FolderProvider = (*Provider)(nil)

// NewProvider creates a provider rooted at root
func NewProvider(root string) *Provider {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	return &Provider{root: root}
}

// Name identifies the provider in logs and status output
func (p *Provider) Name() string {
	return "filesystem"
}

// Root returns the absolute root directory
func (p *Provider) Root() string {
	return p.root
}

// CreateFolder creates name under parentID (the root when empty) with a README
func (p *Provider) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validateName(name); err != nil {
		return "", err
	}

	parentPath, err := p.Resolve(parentID)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(parentPath); err != nil || !info.IsDir() {
		return "", fmt.Errorf("parent folder not found: %q", parentID)
	}

	folderPath := filepath.Join(parentPath, name)
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	readmePath := filepath.Join(folderPath, readmeName)
	if _, err := os.Stat(readmePath); os.IsNotExist(err) {
		if err := os.WriteFile(readmePath, []byte(readmeTemplate(name)), 0644); err != nil {
			return "", fmt.Errorf("failed to create README: %w", err)
		}
	}

	rel, err := filepath.Rel(p.root, folderPath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// Resolve maps a folder id back to its directory
func (p *Provider) Resolve(id string) (string, error) {
	if id == "" {
		if err := os.MkdirAll(p.root, 0755); err != nil {
			return "", fmt.Errorf("failed to create root: %w", err)
		}
		return p.root, nil
	}

	clean := filepath.Clean(filepath.FromSlash(id))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("folder id escapes root: %q", id)
	}
	return filepath.Join(p.root, clean), nil
}

func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("folder name is required")
	case name == "." || name == "..":
		return fmt.Errorf("invalid folder name: %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("folder name must not contain path separators: %q", name)
	}
	return nil
}

func readmeTemplate(name string) string {
	return fmt.Sprintf("# %s\n\nSeminar resources managed by edet.\n", name)
}
