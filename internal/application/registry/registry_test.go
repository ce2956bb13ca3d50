package registry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"edet/internal/adapters/memory"
	"edet/internal/application"
	"edet/internal/domain"
)

// fakeProvider hands out sequential ids and can fail on a chosen folder name
type fakeProvider struct {
	calls  []string
	parent map[string]string
	failOn string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{parent: make(map[string]string)}
}

func (p *fakeProvider) CreateFolder(_ context.Context, name, parentID string) (string, error) {
	if name == p.failOn {
		return "", errors.New("quota exceeded")
	}
	p.calls = append(p.calls, name)
	p.parent[name] = parentID
	return fmt.Sprintf("id-%d", len(p.calls)), nil
}

func (p *fakeProvider) Name() string { return "fake" }

var fixedNow = time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

func newTestRegistry() (*SeminarRegistry, *memory.Store, *fakeProvider) {
	store := memory.NewStore()
	provider := newFakeProvider()
	reg := New(store, provider, WithClock(func() time.Time { return fixedNow }))
	return reg, store, provider
}

func TestFindSeminar(t *testing.T) {
	reg, _, _ := newTestRegistry()

	for id := 1; id <= 7; id++ {
		s, err := reg.FindSeminar(id)
		if err != nil {
			t.Errorf("FindSeminar(%d) unexpected error: %v", id, err)
			continue
		}
		if s.ID != id {
			t.Errorf("FindSeminar(%d) returned %d", id, s.ID)
		}
	}

	for _, id := range []int{0, 8, 100} {
		_, err := reg.FindSeminar(id)
		var nf *application.NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("FindSeminar(%d) expected NotFoundError, got %v", id, err)
		}
	}
}

func TestListSeminars(t *testing.T) {
	reg, _, _ := newTestRegistry()

	seminars := reg.ListSeminars()
	if len(seminars) != 7 {
		t.Fatalf("expected 7 seminars, got %d", len(seminars))
	}
	if seminars[0].FolderName != "EDET_Seminario_01" || seminars[6].FolderName != "EDET_Seminario_07" {
		t.Errorf("unexpected order: first=%s last=%s", seminars[0].FolderName, seminars[6].FolderName)
	}
}

func TestCreateOrGetFolder_Idempotent(t *testing.T) {
	ctx := context.Background()
	reg, store, provider := newTestRegistry()

	first, err := reg.CreateOrGetFolder(ctx, "EDET_Seminario_02", "")
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	keysAfterFirst := store.Len()

	second, err := reg.CreateOrGetFolder(ctx, "EDET_Seminario_02", "")
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if first != second {
		t.Errorf("expected same id, got %s and %s", first, second)
	}
	if len(provider.calls) != 1 {
		t.Errorf("expected provider to be called once, got %d", len(provider.calls))
	}
	if store.Len() != keysAfterFirst {
		t.Errorf("second call changed stored keys: %d -> %d", keysAfterFirst, store.Len())
	}
}

func TestCreateOrGetFolder_PersistsBothDirections(t *testing.T) {
	ctx := context.Background()
	reg, _, _ := newTestRegistry()

	id, err := reg.CreateOrGetFolder(ctx, "child", "parent-id")
	if err != nil {
		t.Fatalf("CreateOrGetFolder failed: %v", err)
	}

	got, found, err := reg.LookupFolder(ctx, "child")
	if err != nil || !found || got != id {
		t.Errorf("LookupFolder() = %q, %v, %v; want %q", got, found, err, id)
	}

	rec, found, err := reg.Folder(ctx, id)
	if err != nil || !found {
		t.Fatalf("Folder() found=%v err=%v", found, err)
	}
	want := domain.FolderRecord{FolderID: id, FolderName: "child", ParentFolderID: "parent-id"}
	if rec != want {
		t.Errorf("Folder() = %+v, want %+v", rec, want)
	}
}

func TestCreateOrGetFolder_DistinctNamesDistinctIDs(t *testing.T) {
	ctx := context.Background()
	reg, _, _ := newTestRegistry()

	a, _ := reg.CreateOrGetFolder(ctx, "a", "")
	b, _ := reg.CreateOrGetFolder(ctx, "b", "")
	if a == b {
		t.Errorf("distinct names share id %s", a)
	}
}

func TestCreateOrGetFolder_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		reg, _, _ := newTestRegistry()
		_, err := reg.CreateOrGetFolder(ctx, "  ", "")
		if !errors.Is(err, application.ErrInvalidInput) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("store read failure", func(t *testing.T) {
		reg, store, _ := newTestRegistry()
		store.FailGet = errors.New("disk gone")
		_, err := reg.CreateOrGetFolder(ctx, "x", "")
		if !errors.Is(err, application.ErrPersistence) {
			t.Errorf("expected persistence error, got %v", err)
		}
	})

	t.Run("store write failure", func(t *testing.T) {
		reg, store, _ := newTestRegistry()
		store.FailSet = errors.New("read-only")
		_, err := reg.CreateOrGetFolder(ctx, "x", "")
		if !errors.Is(err, application.ErrPersistence) {
			t.Errorf("expected persistence error, got %v", err)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		reg, store, provider := newTestRegistry()
		provider.failOn = "x"
		_, err := reg.CreateOrGetFolder(ctx, "x", "")
		if err == nil {
			t.Fatal("expected error")
		}
		if store.Len() != 0 {
			t.Errorf("nothing should be stored after a provider failure, got %d keys", store.Len())
		}
	})
}

func TestInitializeStructure(t *testing.T) {
	ctx := context.Background()
	reg, store, provider := newTestRegistry()

	res, err := reg.InitializeStructure(ctx)
	if err != nil {
		t.Fatalf("InitializeStructure failed: %v", err)
	}

	if res.MainFolderID == "" {
		t.Error("expected a main folder id")
	}
	if res.SeminarsCount != 7 {
		t.Errorf("expected 7 seminars, got %d", res.SeminarsCount)
	}
	if !res.LastSync.Equal(fixedNow) {
		t.Errorf("expected last sync %v, got %v", fixedNow, res.LastSync)
	}

	// Main folder first, then the catalog in order
	wantCalls := []string{domain.MainFolderName}
	for _, s := range domain.Seminars() {
		wantCalls = append(wantCalls, s.FolderName)
	}
	if fmt.Sprint(provider.calls) != fmt.Sprint(wantCalls) {
		t.Errorf("creation order = %v, want %v", provider.calls, wantCalls)
	}
	for _, s := range domain.Seminars() {
		if provider.parent[s.FolderName] != res.MainFolderID {
			t.Errorf("%s parented to %q, want %q", s.FolderName, provider.parent[s.FolderName], res.MainFolderID)
		}
	}

	vals, err := application.Load(ctx, store, domain.KeyInitialized, domain.KeyMainFolderID, domain.KeyLastSync)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var initialized bool
	var mainID string
	vals.Decode(domain.KeyInitialized, &initialized)
	vals.Decode(domain.KeyMainFolderID, &mainID)
	if !initialized || mainID != res.MainFolderID {
		t.Errorf("stored initialized=%v main=%q", initialized, mainID)
	}
}

func TestInitializeStructure_RerunIsNonDestructive(t *testing.T) {
	ctx := context.Background()
	reg, _, provider := newTestRegistry()

	first, err := reg.InitializeStructure(ctx)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := reg.InitializeStructure(ctx)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if first.MainFolderID != second.MainFolderID {
		t.Errorf("main folder changed: %s -> %s", first.MainFolderID, second.MainFolderID)
	}
	if len(provider.calls) != 8 {
		t.Errorf("expected 8 provider calls in total, got %d", len(provider.calls))
	}
}

func TestInitializeStructure_AbortsOnFirstFailure(t *testing.T) {
	ctx := context.Background()
	reg, store, provider := newTestRegistry()
	provider.failOn = "EDET_Seminario_04"

	_, err := reg.InitializeStructure(ctx)
	if err == nil {
		t.Fatal("expected failure")
	}

	// Main + seminars 1..3 were created and kept
	if len(provider.calls) != 4 {
		t.Errorf("expected 4 folders before the failure, got %v", provider.calls)
	}

	vals, _ := application.Load(ctx, store, domain.KeyInitialized)
	var initialized bool
	if found, _ := vals.Decode(domain.KeyInitialized, &initialized); found {
		t.Error("initialized flag must not be written after a failure")
	}

	// Fixing the cause and re-running resumes without re-creating folders
	provider.failOn = ""
	if _, err := reg.InitializeStructure(ctx); err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	if len(provider.calls) != 8 {
		t.Errorf("expected 8 provider calls after resume, got %d", len(provider.calls))
	}
}

func TestInitializeStructure_MainFolderFailure(t *testing.T) {
	reg, _, provider := newTestRegistry()
	provider.failOn = domain.MainFolderName

	_, err := reg.InitializeStructure(context.Background())
	if err == nil {
		t.Fatal("expected failure")
	}
	if len(provider.calls) != 0 {
		t.Errorf("no subfolders should be attempted, got %v", provider.calls)
	}
}
