package domain

// FolderRecord binds a folder name to its opaque id
type FolderRecord struct {
	FolderID       string `json:"folderId"`
	FolderName     string `json:"folderName"`
	ParentFolderID string `json:"parentFolderId,omitempty"`
}
