package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"edet/internal/application"
	"edet/internal/domain"
	"edet/internal/logging"
	"edet/internal/ports"
)

// SeminarRegistry owns the seminar catalog and the folder name → id bookkeeping.
// Folder creation itself is delegated to a ports.FolderProvider.
type SeminarRegistry struct {
	store   ports.KeyValueStore
	folders ports.FolderProvider
	log     logrus.FieldLogger
	now     func() time.Time
}

// Option configures the SeminarRegistry
type Option func(*SeminarRegistry)

// WithLogger sets the logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *SeminarRegistry) {
		r.log = log
	}
}

// WithClock sets the time source for the last-sync timestamp
func WithClock(now func() time.Time) Option {
	return func(r *SeminarRegistry) {
		r.now = now
	}
}

// New creates a SeminarRegistry
func New(store ports.KeyValueStore, folders ports.FolderProvider, opts ...Option) *SeminarRegistry {
	r := &SeminarRegistry{
		store:   store,
		folders: folders,
		log:     logging.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Now returns the registry's current time in UTC
func (r *SeminarRegistry) Now() time.Time {
	return r.now().UTC()
}

// Store exposes the persistence collaborator to commands built on the registry
func (r *SeminarRegistry) Store() ports.KeyValueStore {
	return r.store
}

// Logger returns the registry logger
func (r *SeminarRegistry) Logger() logrus.FieldLogger {
	return r.log
}

// ListSeminars returns the catalog in declaration order
func (r *SeminarRegistry) ListSeminars() []domain.SeminarEntry {
	return domain.Seminars()
}

// FindSeminar returns the catalog entry for id or a NotFoundError
func (r *SeminarRegistry) FindSeminar(id int) (domain.SeminarEntry, error) {
	return application.ResolveSeminar(id)
}

// LookupFolder returns the id previously bound to folderName
func (r *SeminarRegistry) LookupFolder(ctx context.Context, folderName string) (string, bool, error) {
	key := domain.FolderByNameKey(folderName)
	vals, err := application.Load(ctx, r.store, key)
	if err != nil {
		return "", false, err
	}

	var id string
	found, err := vals.Decode(key, &id)
	if err != nil || !found || id == "" {
		return "", false, err
	}
	return id, true, nil
}

// Folder returns the record stored for folderID
func (r *SeminarRegistry) Folder(ctx context.Context, folderID string) (domain.FolderRecord, bool, error) {
	key := domain.FolderByIDKey(folderID)
	vals, err := application.Load(ctx, r.store, key)
	if err != nil {
		return domain.FolderRecord{}, false, err
	}

	var rec domain.FolderRecord
	found, err := vals.Decode(key, &rec)
	return rec, found, err
}

// CreateOrGetFolder returns the id bound to folderName, creating the folder
// through the provider on first request. Both lookup directions are written
// in a single Set call.
func (r *SeminarRegistry) CreateOrGetFolder(ctx context.Context, folderName, parentFolderID string) (string, error) {
	if err := application.ValidateRequired("folderName", folderName); err != nil {
		return "", err
	}

	log := r.log.WithField("folder_name", folderName)

	id, found, err := r.LookupFolder(ctx, folderName)
	if err != nil {
		return "", err
	}
	if found {
		log.WithField("folder_id", id).Debug("reusing folder")
		return id, nil
	}

	id, err = r.folders.CreateFolder(ctx, folderName, parentFolderID)
	if err != nil {
		return "", fmt.Errorf("creating folder %s via %s: %w", folderName, r.folders.Name(), err)
	}
	if id == "" {
		return "", fmt.Errorf("creating folder %s via %s: empty folder id", folderName, r.folders.Name())
	}

	entries := application.Entries{}
	if err := entries.Put(domain.FolderByNameKey(folderName), id); err != nil {
		return "", err
	}
	rec := domain.FolderRecord{FolderID: id, FolderName: folderName, ParentFolderID: parentFolderID}
	if err := entries.Put(domain.FolderByIDKey(id), rec); err != nil {
		return "", err
	}
	if err := application.Save(ctx, r.store, entries); err != nil {
		return "", err
	}

	log.WithFields(logrus.Fields{
		"folder_id": id,
		"parent_id": parentFolderID,
		"provider":  r.folders.Name(),
	}).Info("folder created")
	return id, nil
}

// InitializeResult describes a completed structure initialization
type InitializeResult struct {
	MainFolderID  string    `json:"mainFolderId"`
	SeminarsCount int       `json:"seminarsCount"`
	LastSync      time.Time `json:"lastSync"`
	Message       string    `json:"message"`
}

// InitializeStructure creates the main folder and one subfolder per seminar
// in catalog order. The first failure aborts; folders created before it are
// kept, so running it again resumes where it stopped.
func (r *SeminarRegistry) InitializeStructure(ctx context.Context) (*InitializeResult, error) {
	r.log.Info("initializing folder structure")

	mainID, err := r.CreateOrGetFolder(ctx, domain.MainFolderName, "")
	if err != nil {
		return nil, fmt.Errorf("could not create main folder: %w", err)
	}

	seminars := r.ListSeminars()
	for _, s := range seminars {
		if _, err := r.CreateOrGetFolder(ctx, s.FolderName, mainID); err != nil {
			return nil, fmt.Errorf("could not create folder for seminar %d: %w", s.ID, err)
		}
	}

	now := r.Now()
	entries := application.Entries{}
	if err := entries.Put(domain.KeyMainFolderID, mainID); err != nil {
		return nil, err
	}
	if err := entries.Put(domain.KeyInitialized, true); err != nil {
		return nil, err
	}
	if err := entries.Put(domain.KeyLastSync, now); err != nil {
		return nil, err
	}
	if err := application.Save(ctx, r.store, entries); err != nil {
		return nil, err
	}

	r.log.WithFields(logrus.Fields{
		"main_folder_id": mainID,
		"seminars":       len(seminars),
	}).Info("folder structure initialized")

	return &InitializeResult{
		MainFolderID:  mainID,
		SeminarsCount: len(seminars),
		LastSync:      now,
		Message:       fmt.Sprintf("Initialized %s with %d seminar folders", domain.MainFolderName, len(seminars)),
	}, nil
}
