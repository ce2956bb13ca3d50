package domain

import "time"

// StatusSnapshot is a read-only view of the organizer state
type StatusSnapshot struct {
	Initialized   bool           `json:"initialized"`
	MainFolderID  string         `json:"mainFolderId,omitempty"`
	LastSync      *time.Time     `json:"lastSync,omitempty"`
	Seminars      []SeminarEntry `json:"seminars"`
	TotalSeminars int            `json:"totalSeminars"`
}

// Settings holds the user-facing configuration flags
type Settings struct {
	AutoOrganize bool      `json:"autoOrganize"`
	EnableRAG    bool      `json:"enableRag"`
	SyncDrive    bool      `json:"syncDrive"`
	Timestamp    time.Time `json:"timestamp"`
}
