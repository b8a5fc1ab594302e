package providers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/drivemark/drivemark/internal/bookmarks"
)

// SQLiteProvider reads bookmarks from a local SQLite database with a
// bookmarks/folders schema (bookmarks.title, bookmarks.url,
// bookmarks.folder_id referencing folders.name).
type SQLiteProvider struct {
	path    string
	enabled bool
}

func NewSQLiteProvider() *SQLiteProvider {
	return &SQLiteProvider{
		enabled: false,
	}
}

func (sp *SQLiteProvider) Name() string {
	return "sqlite"
}

func (sp *SQLiteProvider) IsEnabled() bool {
	return sp.enabled && sp.path != ""
}

// Configure configures the sqlite provider with the given settings
func (sp *SQLiteProvider) Configure(config map[string]interface{}) error {
	if path, ok := config["path"].(string); ok {
		sp.path = path
		sp.enabled = true
		return nil
	}
	return fmt.Errorf("sqlite provider requires 'path' setting")
}

// GetBookmarks reads every bookmark row with a non-empty URL, joined
// with its folder name, in insertion (rowid) order.
func (sp *SQLiteProvider) GetBookmarks(ctx context.Context) ([]bookmarks.Bookmark, error) {
	if !sp.IsEnabled() {
		return nil, fmt.Errorf("sqlite provider is not enabled or configured")
	}

	if _, err := os.Stat(sp.path); err != nil {
		return nil, fmt.Errorf("bookmark database does not exist: %v", err)
	}

	db, err := sql.Open("sqlite3", sp.path)
	if err != nil {
		return nil, fmt.Errorf("error opening bookmark database: %v", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT b.title, b.url, f.name, b.created_at
		FROM bookmarks AS b
		LEFT JOIN folders AS f ON f.id = b.folder_id
		WHERE b.url <> ''
		ORDER BY b.id
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying bookmarks: %v", err)
	}
	defer rows.Close()

	var marks []bookmarks.Bookmark
	for rows.Next() {
		var (
			title     string
			url       string
			folder    sql.NullString
			createdAt sql.NullInt64
		)
		if err := rows.Scan(&title, &url, &folder, &createdAt); err != nil {
			return nil, fmt.Errorf("error scanning bookmark row: %v", err)
		}

		b := bookmarks.Bookmark{
			Title:  title,
			URL:    url,
			Source: sp.Name(),
		}
		if folder.Valid {
			b.Folder = folder.String
		}
		if createdAt.Valid {
			b.CreatedAt = time.Unix(createdAt.Int64, 0)
		} else {
			b.CreatedAt = time.Now()
		}

		marks = append(marks, b)
	}

	return marks, rows.Err()
}
