package providers

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/drivemark/drivemark/internal/bookmarks"
	"github.com/drivemark/drivemark/internal/util"
)

// FileProvider implements the Provider interface for plain-text URL lists
type FileProvider struct {
	path    string
	enabled bool
}

func NewFileProvider() *FileProvider {
	return &FileProvider{
		enabled: false,
	}
}

func (fp *FileProvider) Name() string {
	return "file"
}

func (fp *FileProvider) IsEnabled() bool {
	return fp.enabled && fp.path != ""
}

// Configure configures the file provider with the given settings
func (fp *FileProvider) Configure(config map[string]interface{}) error {
	if path, ok := config["path"].(string); ok {
		fp.path = path
		fp.enabled = true
		return nil
	}
	return fmt.Errorf("file provider requires 'path' setting")
}

// GetBookmarks retrieves bookmarks from the configured file or directory
func (fp *FileProvider) GetBookmarks(ctx context.Context) ([]bookmarks.Bookmark, error) {
	if !fp.IsEnabled() {
		return nil, fmt.Errorf("file provider is not enabled or configured")
	}

	info, err := os.Stat(fp.path)
	if err != nil {
		return nil, fmt.Errorf("bookmark path does not exist: %v", err)
	}

	var allBookmarks []bookmarks.Bookmark

	if info.IsDir() {
		files, err := os.ReadDir(fp.path)
		if err != nil {
			return nil, fmt.Errorf("error reading bookmark directory: %v", err)
		}

		for _, file := range files {
			if file.IsDir() {
				continue
			}

			filePath := filepath.Join(fp.path, file.Name())
			marks, err := fp.readBookmarkFile(filePath)
			if err != nil {
				util.Red.Printf("Error reading file %s: %v\n", filePath, err)
				continue
			}
			allBookmarks = append(allBookmarks, marks...)
		}
	} else {
		marks, err := fp.readBookmarkFile(fp.path)
		if err != nil {
			return nil, fmt.Errorf("error reading bookmark file: %v", err)
		}
		allBookmarks = marks
	}

	return allBookmarks, nil
}

// readBookmarkFile reads one URL per line, with optional "url title"
// form. Blank lines and # comments are skipped.
func (fp *FileProvider) readBookmarkFile(filePath string) ([]bookmarks.Bookmark, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var marks []bookmarks.Bookmark
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !strings.HasPrefix(line, "http://") && !strings.HasPrefix(line, "https://") {
			continue
		}

		url := line
		title := ""
		if idx := strings.IndexAny(line, " \t"); idx > 0 {
			url = line[:idx]
			title = strings.TrimSpace(line[idx:])
		}

		marks = append(marks, bookmarks.Bookmark{
			URL:       url,
			Title:     title,
			CreatedAt: time.Now(),
			Source:    fp.Name(),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return marks, nil
}
