package domain

import "time"

// FileDescriptor describes a downloaded file handed over for organization
type FileDescriptor struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// ProcessedFile is a FileDescriptor routed to a seminar folder
type ProcessedFile struct {
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	Type        string `json:"type"`
	SeminarID   int    `json:"seminarId"`
	Destination string `json:"destination"` // seminar folder name
	Processed   bool   `json:"processed"`
}

// OrganizationRecord is the result of organizing a batch of files for one seminar
type OrganizationRecord struct {
	Seminar        string          `json:"seminar"`
	SeminarID      int             `json:"seminarId"`
	ProcessedFiles []ProcessedFile `json:"processedFiles"`
	TotalFiles     int             `json:"totalFiles"`
	Timestamp      time.Time       `json:"timestamp"`
}

// RouteFile maps a descriptor onto the seminar's folder
func RouteFile(f FileDescriptor, seminar SeminarEntry) ProcessedFile {
	return ProcessedFile{
		Filename:    f.Name,
		Size:        f.Size,
		Type:        f.Type,
		SeminarID:   seminar.ID,
		Destination: seminar.FolderName,
		Processed:   true,
	}
}
