package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/drivemark/drivemark/internal/bookmarks"
)

// SampleProvider generates a fixed set of bookmarks. It stands in for a
// real browser-data reader so the rest of the pipeline can run without
// any local bookmark store configured.
type SampleProvider struct {
	enabled bool
	count   int
}

const defaultSampleCount = 50

func NewSampleProvider() *SampleProvider {
	return &SampleProvider{
		enabled: false,
		count:   defaultSampleCount,
	}
}

func (sp *SampleProvider) Name() string {
	return "sample"
}

func (sp *SampleProvider) IsEnabled() bool {
	return sp.enabled
}

// Configure configures the sample provider with the given settings
func (sp *SampleProvider) Configure(config map[string]interface{}) error {
	sp.enabled = true
	if enabled, ok := config["enabled"].(bool); ok {
		sp.enabled = enabled
	}
	if count, ok := config["count"].(float64); ok {
		if count < 0 {
			return fmt.Errorf("sample provider count must not be negative")
		}
		sp.count = int(count)
	}
	return nil
}

// GetBookmarks generates the sample bookmark set. Every fifth entry
// lands in the Work folder, every second is tagged Technology and every
// third tagged News, with one fixed entry appended at the end.
func (sp *SampleProvider) GetBookmarks(ctx context.Context) ([]bookmarks.Bookmark, error) {
	now := time.Now()
	marks := make([]bookmarks.Bookmark, 0, sp.count+1)

	for i := 1; i <= sp.count; i++ {
		folder := "Personal"
		if i%5 == 0 {
			folder = "Work"
		}

		b := bookmarks.Bookmark{
			Title:     fmt.Sprintf("Useful Site #%d", i),
			URL:       fmt.Sprintf("https://www.example.com/resource/%d", i),
			Folder:    folder,
			CreatedAt: now,
			Source:    sp.Name(),
		}

		if i%2 == 0 {
			b.Tags = append(b.Tags, "Technology")
		}
		if i%3 == 0 {
			b.Tags = append(b.Tags, "News")
		}

		marks = append(marks, b)
	}

	marks = append(marks, bookmarks.Bookmark{
		Title:     "Google Drive API Docs",
		URL:       "https://developers.google.com/drive",
		Folder:    "Dev",
		CreatedAt: now,
		Source:    sp.Name(),
	})

	return marks, nil
}
