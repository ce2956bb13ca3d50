package drive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// fakeDrive serves the two Files endpoints the provider calls
type fakeDrive struct {
	mu      sync.Mutex
	folders map[string]string // "parent/name" -> id
	created []drive.File
	queries []string
	failAll bool
}

func (f *fakeDrive) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAll {
		http.Error(w, `{"error":{"code":400,"message":"bad request"}}`, http.StatusBadRequest)
		return
	}
	if !strings.HasSuffix(r.URL.Path, "/files") {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query().Get("q")
		f.queries = append(f.queries, q)
		files := []map[string]string{}
		for key, id := range f.folders {
			parts := strings.SplitN(key, "/", 2)
			if strings.Contains(q, "'"+parts[0]+"' in parents") && strings.Contains(q, "name = '"+parts[1]+"'") {
				files = append(files, map[string]string{"id": id, "name": parts[1]})
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"files": files})
	case http.MethodPost:
		var file drive.File
		if err := json.NewDecoder(r.Body).Decode(&file); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.created = append(f.created, file)
		id := "drive-" + file.Name
		f.folders[file.Parents[0]+"/"+file.Name] = id
		json.NewEncoder(w).Encode(map[string]string{"id": id})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func newTestProvider(t *testing.T, fake *fakeDrive) *Provider {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	p, err := NewProvider(context.Background(), "",
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return p
}

func TestCreateFolder_CreatesWhenMissing(t *testing.T) {
	fake := &fakeDrive{folders: map[string]string{}}
	p := newTestProvider(t, fake)

	id, err := p.CreateFolder(context.Background(), "EDET_RAG_UBA_Medical_Education", "")
	require.NoError(t, err)
	assert.Equal(t, "drive-EDET_RAG_UBA_Medical_Education", id)

	require.Len(t, fake.created, 1)
	assert.Equal(t, FolderMimeType, fake.created[0].MimeType)
	assert.Equal(t, []string{"root"}, fake.created[0].Parents)
}

func TestCreateFolder_ReusesExisting(t *testing.T) {
	fake := &fakeDrive{folders: map[string]string{"main-id/EDET_Seminario_01": "existing-id"}}
	p := newTestProvider(t, fake)

	id, err := p.CreateFolder(context.Background(), "EDET_Seminario_01", "main-id")
	require.NoError(t, err)
	assert.Equal(t, "existing-id", id)
	assert.Empty(t, fake.created)
}

func TestCreateFolder_EscapesQuery(t *testing.T) {
	fake := &fakeDrive{folders: map[string]string{}}
	p := newTestProvider(t, fake)

	_, err := p.CreateFolder(context.Background(), "Dr. O'Neil", "")
	require.NoError(t, err)
	require.NotEmpty(t, fake.queries)
	assert.Contains(t, fake.queries[0], `name = 'Dr. O\'Neil'`)
	assert.Contains(t, fake.queries[0], "trashed = false")
}

func TestCreateFolder_ServerError(t *testing.T) {
	fake := &fakeDrive{folders: map[string]string{}, failAll: true}
	p := newTestProvider(t, fake)

	_, err := p.CreateFolder(context.Background(), "x", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestCreateFolder_EmptyName(t *testing.T) {
	p := newTestProvider(t, &fakeDrive{folders: map[string]string{}})

	_, err := p.CreateFolder(context.Background(), " ", "")
	assert.Error(t, err)
	assert.Equal(t, "drive", p.Name())
}

func TestFolderQuery(t *testing.T) {
	got := folderQuery(`a\b`, "root")
	assert.Equal(t, `name = 'a\\b' and mimeType = 'application/vnd.google-apps.folder' and 'root' in parents and trashed = false`, got)
}
