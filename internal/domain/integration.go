package domain

import "time"

// IntegrationConfig links a seminar folder to the external knowledge-base connection.
// Re-connecting a seminar replaces the stored record.
type IntegrationConfig struct {
	FolderID    string    `json:"folderId"`
	SeminarID   int       `json:"seminarId"`
	SeminarName string    `json:"seminarName"`
	RAGEnabled  bool      `json:"ragEnabled"`
	Timestamp   time.Time `json:"timestamp"`
}
