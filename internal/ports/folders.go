package ports

import "context"

// FolderProvider creates folders in whatever backs the seminar structure
// (a stub, the local filesystem, a remote drive).
// Name-to-id bookkeeping is done by the caller; CreateFolder is only
// invoked for names that have no id yet.
type FolderProvider interface {
	// CreateFolder creates a folder named name under parentID (empty for
	// a root folder) and returns its opaque id.
	CreateFolder(ctx context.Context, name, parentID string) (string, error)

	// Name identifies the provider in logs
	Name() string
}
