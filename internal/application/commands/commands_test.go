package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"edet/internal/adapters/folders/local"
	"edet/internal/adapters/memory"
	"edet/internal/application"
	"edet/internal/application/registry"
	"edet/internal/domain"
)

var fixedNow = time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)

func newTestRegistry() (*registry.SeminarRegistry, *memory.Store) {
	store := memory.NewStore()
	reg := registry.New(store, local.NewProvider(), registry.WithClock(func() time.Time { return fixedNow }))
	return reg, store
}

func TestConnectIntegrationCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		seminarID int
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "first seminar",
			seminarID: 1,
			wantErr:   false,
		},
		{
			name:      "last seminar",
			seminarID: 7,
			wantErr:   false,
		},
		{
			name:      "zero id",
			seminarID: 0,
			wantErr:   true,
			errMsg:    "seminar 0 not found",
		},
		{
			name:      "beyond catalog",
			seminarID: 8,
			wantErr:   true,
			errMsg:    "seminar 8 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &ConnectIntegrationCommand{SeminarID: tt.seminarID}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConnectIntegrationCommand_BeforeInitialize(t *testing.T) {
	reg, _ := newTestRegistry()

	_, err := NewConnectIntegrationCommand(reg, 2).Execute(context.Background())
	if !errors.Is(err, application.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if !strings.Contains(err.Error(), "EDET_Seminario_02") {
		t.Errorf("expected folder name in error, got %q", err.Error())
	}
}

func TestConnectIntegrationCommand_AfterInitialize(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry()

	if _, err := NewInitializeCommand(reg).Execute(ctx); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	res, err := NewConnectIntegrationCommand(reg, 5).Execute(ctx)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	folderID, _, _ := reg.LookupFolder(ctx, "EDET_Seminario_05")
	if res.Config.FolderID != folderID {
		t.Errorf("expected folder %s, got %s", folderID, res.Config.FolderID)
	}
	if !res.Config.RAGEnabled {
		t.Error("expected RAG to be enabled")
	}
	if res.Seminar != "Seminario 5: Casos Clínicos" || res.Config.SeminarName != res.Seminar {
		t.Errorf("unexpected seminar name %q / %q", res.Seminar, res.Config.SeminarName)
	}
	if !res.Config.Timestamp.Equal(fixedNow) {
		t.Errorf("expected timestamp %v, got %v", fixedNow, res.Config.Timestamp)
	}

	stored, err := NewGetIntegrationCommand(reg, 5).Execute(ctx)
	if err != nil {
		t.Fatalf("get integration failed: %v", err)
	}
	if *stored != res.Config {
		t.Errorf("stored %+v, returned %+v", *stored, res.Config)
	}
}

func TestConnectIntegrationCommand_ReconnectOverwrites(t *testing.T) {
	ctx := context.Background()
	reg, store := newTestRegistry()
	NewInitializeCommand(reg).Execute(ctx)

	if _, err := NewConnectIntegrationCommand(reg, 1).Execute(ctx); err != nil {
		t.Fatalf("first connect failed: %v", err)
	}
	keys := store.Len()

	later := fixedNow.Add(time.Hour)
	reg2 := registry.New(store, local.NewProvider(), registry.WithClock(func() time.Time { return later }))
	if _, err := NewConnectIntegrationCommand(reg2, 1).Execute(ctx); err != nil {
		t.Fatalf("second connect failed: %v", err)
	}

	if store.Len() != keys {
		t.Errorf("reconnect added keys: %d -> %d", keys, store.Len())
	}
	stored, _ := NewGetIntegrationCommand(reg, 1).Execute(ctx)
	if !stored.Timestamp.Equal(later) {
		t.Errorf("expected overwritten timestamp %v, got %v", later, stored.Timestamp)
	}
}

func TestGetIntegrationCommand_Errors(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	if _, err := NewGetIntegrationCommand(reg, 42).Execute(ctx); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := NewGetIntegrationCommand(reg, 3).Execute(ctx); !errors.Is(err, application.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestOrganizeResourcesCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		seminarID int
		files     []domain.FileDescriptor
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid",
			seminarID: 3,
			files:     []domain.FileDescriptor{{Name: "a.pdf"}},
		},
		{
			name:      "empty list is allowed",
			seminarID: 3,
			files:     []domain.FileDescriptor{},
		},
		{
			name:      "nil list",
			seminarID: 3,
			files:     nil,
			wantErr:   true,
			errMsg:    "files is required",
		},
		{
			name:      "unknown seminar",
			seminarID: 9,
			files:     []domain.FileDescriptor{},
			wantErr:   true,
			errMsg:    "seminar 9 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &OrganizeResourcesCommand{SeminarID: tt.seminarID, Files: tt.files}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestOrganizeResourcesCommand_Execute(t *testing.T) {
	ctx := context.Background()
	reg, store := newTestRegistry()

	files := []domain.FileDescriptor{
		{Name: "a.pdf", Size: 10, Type: "application/pdf"},
		{Name: "notes.txt", Size: 3, Type: ""},
		{Name: "slides.pptx", Size: 2048, Type: "application/vnd.ms-powerpoint"},
	}

	rec, err := NewOrganizeResourcesCommand(reg, files, 3).Execute(ctx)
	if err != nil {
		t.Fatalf("organize failed: %v", err)
	}

	if rec.TotalFiles != 3 || len(rec.ProcessedFiles) != 3 {
		t.Fatalf("expected 3 files, got total=%d processed=%d", rec.TotalFiles, len(rec.ProcessedFiles))
	}
	for i, pf := range rec.ProcessedFiles {
		if pf.Filename != files[i].Name || pf.Size != files[i].Size || pf.Type != files[i].Type {
			t.Errorf("file %d not passed through: %+v", i, pf)
		}
		if pf.Destination != "EDET_Seminario_03" || pf.SeminarID != 3 || !pf.Processed {
			t.Errorf("file %d not routed: %+v", i, pf)
		}
	}
	if rec.Seminar != "Seminario 3: Conceptos Clínicos" {
		t.Errorf("unexpected seminar %q", rec.Seminar)
	}

	vals, _ := application.Load(ctx, store, domain.ResourcesKey(3))
	var stored domain.OrganizationRecord
	if found, err := vals.Decode(domain.ResourcesKey(3), &stored); !found || err != nil {
		t.Fatalf("record not stored: found=%v err=%v", found, err)
	}
	if stored.TotalFiles != 3 || stored.ProcessedFiles[2].Filename != "slides.pptx" {
		t.Errorf("unexpected stored record %+v", stored)
	}
}

func TestOrganizeResourcesCommand_DoesNotRequireInitialization(t *testing.T) {
	reg, _ := newTestRegistry()
	files := []domain.FileDescriptor{{Name: "a.pdf", Size: 10, Type: "application/pdf"}}

	rec, err := NewOrganizeResourcesCommand(reg, files, 3).Execute(context.Background())
	if err != nil {
		t.Fatalf("organize failed: %v", err)
	}
	if rec.TotalFiles != 1 || rec.ProcessedFiles[0].Destination != "EDET_Seminario_03" {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestStatusCommand(t *testing.T) {
	ctx := context.Background()
	reg, store := newTestRegistry()

	snap, err := NewStatusCommand(reg).Execute(ctx)
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if snap.Initialized || snap.MainFolderID != "" || snap.LastSync != nil {
		t.Errorf("expected empty status, got %+v", snap)
	}
	if snap.TotalSeminars != 7 || len(snap.Seminars) != 7 {
		t.Errorf("expected full catalog, got %d/%d", snap.TotalSeminars, len(snap.Seminars))
	}

	initRes, _ := NewInitializeCommand(reg).Execute(ctx)
	snap, err = NewStatusCommand(reg).Execute(ctx)
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !snap.Initialized || snap.MainFolderID != initRes.MainFolderID {
		t.Errorf("unexpected status after init: %+v", snap)
	}
	if snap.LastSync == nil || !snap.LastSync.Equal(fixedNow) {
		t.Errorf("unexpected last sync %v", snap.LastSync)
	}

	store.FailGet = errors.New("unreachable")
	if _, err := NewStatusCommand(reg).Execute(ctx); !errors.Is(err, application.ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
}

func TestSettingsCommands(t *testing.T) {
	ctx := context.Background()
	reg, _ := newTestRegistry()

	empty, err := NewLoadSettingsCommand(reg).Execute(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *empty != (domain.Settings{}) {
		t.Errorf("expected zero settings, got %+v", *empty)
	}

	saved, err := NewSaveSettingsCommand(reg, domain.Settings{AutoOrganize: true, SyncDrive: true}).Execute(ctx)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !saved.Timestamp.Equal(fixedNow) {
		t.Errorf("expected timestamp %v, got %v", fixedNow, saved.Timestamp)
	}

	loaded, _ := NewLoadSettingsCommand(reg).Execute(ctx)
	if *loaded != *saved {
		t.Errorf("loaded %+v, saved %+v", *loaded, *saved)
	}
}
