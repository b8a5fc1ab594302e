package drive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/drivemark/drivemark/internal/snapshot"
	"github.com/drivemark/drivemark/internal/util"
)

// BackupMimeType is the MIME type of the remote backup file
const BackupMimeType = "application/json"

const folderMimeType = "application/vnd.google-apps.folder"

// Result describes the outcome of a backup run
type Result struct {
	FileID       string
	Created      bool
	WebLink      string
	ModifiedTime string
}

// Backup uploads bookmark snapshots to Google Drive, creating the
// remote file on first run and replacing its content afterwards.
type Backup struct {
	service *drive.Service
	name    string
}

// NewBackup creates a Backup targeting the named remote file
func NewBackup(service *drive.Service, name string) *Backup {
	return &Backup{
		service: service,
		name:    name,
	}
}

// FindExisting queries Drive for a non-trashed, non-folder file with
// the backup name. Returns an empty string when there is no match. When
// several files match, the first one in the response is used; Drive
// does not guarantee an ordering and neither do we.
func (b *Backup) FindExisting(ctx context.Context) (string, error) {
	query := fmt.Sprintf("name = '%s' and trashed = false and mimeType != '%s'",
		escapeQuery(b.name), folderMimeType)

	result, err := b.service.Files.List().
		Q(query).
		Spaces("drive").
		Fields("nextPageToken, files(id, name, createdTime)").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("backup search failed: %w", err)
	}

	if len(result.Files) == 0 {
		return "", nil
	}

	found := result.Files[0]
	util.Cyan.Printf("Located file: %s (created: %s)\n", found.Name, found.CreatedTime)
	return found.Id, nil
}

// Create uploads the snapshot as a new file in the Drive root
func (b *Backup) Create(ctx context.Context, snap *snapshot.Snapshot) (*Result, error) {
	content, err := snap.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot for upload: %w", err)
	}
	defer content.Close()

	meta := &drive.File{
		Name:        b.name,
		MimeType:    BackupMimeType,
		Description: "Backup of user bookmarks generated by drivemark",
	}

	file, err := b.service.Files.Create(meta).
		Media(content, googleapi.ContentType(BackupMimeType)).
		Fields("id, name, webContentLink").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("backup create failed: %w", err)
	}

	return &Result{
		FileID:  file.Id,
		Created: true,
		WebLink: file.WebContentLink,
	}, nil
}

// Update replaces the content of an existing backup file
func (b *Backup) Update(ctx context.Context, fileID string, snap *snapshot.Snapshot) (*Result, error) {
	content, err := snap.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot for upload: %w", err)
	}
	defer content.Close()

	meta := &drive.File{
		Description: "Updated on " + time.Now().Format(time.RFC3339),
	}

	file, err := b.service.Files.Update(fileID, meta).
		Media(content, googleapi.ContentType(BackupMimeType)).
		Fields("id, name, modifiedTime").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("backup update failed: %w", err)
	}

	return &Result{
		FileID:       file.Id,
		Created:      false,
		ModifiedTime: file.ModifiedTime,
	}, nil
}

// Perform locates any existing backup and either updates it in place or
// creates a new remote file. One atomic create/update call per run, no
// retries.
func (b *Backup) Perform(ctx context.Context, snap *snapshot.Snapshot) (*Result, error) {
	existingID, err := b.FindExisting(ctx)
	if err != nil {
		return nil, err
	}

	if existingID != "" {
		util.Cyan.Printf("Found existing backup (ID: %s). Updating...\n", existingID)
		return b.Update(ctx, existingID, snap)
	}

	util.Cyan.Println("No existing backup found. Creating new file...")
	return b.Create(ctx, snap)
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
