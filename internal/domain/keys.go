package domain

import "strconv"

// Storage keys. Values are JSON encoded.
const (
	KeyInitialized  = "edet:initialized"
	KeyMainFolderID = "edet:main_folder_id"
	KeyLastSync     = "edet:last_sync"
	KeySettings     = "edet:settings"

	folderByNamePrefix = "edet:folder:name:"
	folderByIDPrefix   = "edet:folder:id:"
	integrationPrefix  = "edet:integration:"
	resourcesPrefix    = "edet:resources:"
)

// FolderByNameKey maps a folder name to its id
func FolderByNameKey(folderName string) string {
	return folderByNamePrefix + folderName
}

// FolderByIDKey maps a folder id to its FolderRecord
func FolderByIDKey(folderID string) string {
	return folderByIDPrefix + folderID
}

// IntegrationKey holds the IntegrationConfig of a seminar
func IntegrationKey(seminarID int) string {
	return integrationPrefix + strconv.Itoa(seminarID)
}

// ResourcesKey holds the last OrganizationRecord of a seminar
func ResourcesKey(seminarID int) string {
	return resourcesPrefix + strconv.Itoa(seminarID)
}
