package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/drivemark/drivemark/internal/bookmarks"
	"github.com/drivemark/drivemark/internal/snapshot"
)

// fakeDrive records which Drive operations were invoked and serves
// canned responses.
type fakeDrive struct {
	listFiles   []map[string]string
	lastQuery   string
	createCalls int
	updateCalls int
	updatedID   string
}

func (f *fakeDrive) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/files"):
			f.lastQuery = r.URL.Query().Get("q")
			files := f.listFiles
			if files == nil {
				files = []map[string]string{}
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"files": files})

		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/files"):
			f.createCalls++
			_ = json.NewEncoder(w).Encode(map[string]string{
				"id":             "created-id",
				"name":           "my_bookmarks_backup.json",
				"webContentLink": "https://drive.example/download/created-id",
			})

		case r.Method == http.MethodPatch && strings.Contains(r.URL.Path, "/files/"):
			f.updateCalls++
			parts := strings.Split(r.URL.Path, "/")
			f.updatedID = parts[len(parts)-1]
			_ = json.NewEncoder(w).Encode(map[string]string{
				"id":           f.updatedID,
				"name":         "my_bookmarks_backup.json",
				"modifiedTime": "2026-01-02T15:04:05.000Z",
			})

		default:
			http.Error(w, fmt.Sprintf("unexpected call: %s %s", r.Method, r.URL.Path), http.StatusBadRequest)
		}
	})
}

func newTestBackup(t *testing.T, fake *fakeDrive, name string) *Backup {
	t.Helper()

	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	service, err := drivev3.NewService(context.Background(),
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication())
	require.NoError(t, err)

	return NewBackup(service, name)
}

func writeSnapshot(t *testing.T, marks []bookmarks.Bookmark) *snapshot.Snapshot {
	t.Helper()
	snap, err := snapshot.Write(marks)
	require.NoError(t, err)
	t.Cleanup(func() { _ = snap.Close() })
	return snap
}

func TestFindExistingNoMatch(t *testing.T) {
	fake := &fakeDrive{}
	backup := newTestBackup(t, fake, "my_bookmarks_backup.json")

	id, err := backup.FindExisting(context.Background())
	require.NoError(t, err)
	assert.Empty(t, id)

	assert.Contains(t, fake.lastQuery, "name = 'my_bookmarks_backup.json'")
	assert.Contains(t, fake.lastQuery, "trashed = false")
	assert.Contains(t, fake.lastQuery, "mimeType != 'application/vnd.google-apps.folder'")
}

func TestFindExistingFirstMatch(t *testing.T) {
	fake := &fakeDrive{
		listFiles: []map[string]string{
			{"id": "dup-1", "name": "my_bookmarks_backup.json", "createdTime": "2026-01-01T00:00:00.000Z"},
			{"id": "dup-2", "name": "my_bookmarks_backup.json", "createdTime": "2025-01-01T00:00:00.000Z"},
		},
	}
	backup := newTestBackup(t, fake, "my_bookmarks_backup.json")

	id, err := backup.FindExisting(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dup-1", id, "first file in the response wins")
}

func TestPerformCreatesWhenAbsent(t *testing.T) {
	fake := &fakeDrive{}
	backup := newTestBackup(t, fake, "my_bookmarks_backup.json")
	snap := writeSnapshot(t, []bookmarks.Bookmark{
		{Title: "a", URL: "https://a.example"},
		{Title: "b", URL: "https://b.example"},
		{Title: "c", URL: "https://c.example"},
	})

	result, err := backup.Perform(context.Background(), snap)
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, "created-id", result.FileID)
	assert.Equal(t, "https://drive.example/download/created-id", result.WebLink)
	assert.Equal(t, 1, fake.createCalls)
	assert.Equal(t, 0, fake.updateCalls)
}

func TestPerformUpdatesWhenPresent(t *testing.T) {
	fake := &fakeDrive{
		listFiles: []map[string]string{
			{"id": "existing-id", "name": "my_bookmarks_backup.json", "createdTime": "2026-01-01T00:00:00.000Z"},
		},
	}
	backup := newTestBackup(t, fake, "my_bookmarks_backup.json")
	snap := writeSnapshot(t, []bookmarks.Bookmark{{Title: "a", URL: "https://a.example"}})

	result, err := backup.Perform(context.Background(), snap)
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, "existing-id", result.FileID)
	assert.Equal(t, "existing-id", fake.updatedID)
	assert.NotEmpty(t, result.ModifiedTime)
	assert.Equal(t, 0, fake.createCalls)
	assert.Equal(t, 1, fake.updateCalls)
}

func TestFindExistingRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	service, err := drivev3.NewService(context.Background(),
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication())
	require.NoError(t, err)

	backup := NewBackup(service, "my_bookmarks_backup.json")
	_, err = backup.FindExisting(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup search failed")
}

func TestEscapeQuery(t *testing.T) {
	assert.Equal(t, `it\'s`, escapeQuery("it's"))
	assert.Equal(t, `a\\b`, escapeQuery(`a\b`))
	assert.Equal(t, "plain.json", escapeQuery("plain.json"))
}
