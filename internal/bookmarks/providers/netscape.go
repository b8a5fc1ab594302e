package providers

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/drivemark/drivemark/internal/bookmarks"
)

// NetscapeProvider reads browser bookmark exports in the Netscape
// bookmark file format (the "Export bookmarks to HTML" output of
// Chrome and Firefox).
type NetscapeProvider struct {
	path    string
	enabled bool
}

func NewNetscapeProvider() *NetscapeProvider {
	return &NetscapeProvider{
		enabled: false,
	}
}

func (np *NetscapeProvider) Name() string {
	return "netscape"
}

func (np *NetscapeProvider) IsEnabled() bool {
	return np.enabled && np.path != ""
}

// Configure configures the netscape provider with the given settings
func (np *NetscapeProvider) Configure(config map[string]interface{}) error {
	if path, ok := config["path"].(string); ok {
		np.path = path
		np.enabled = true
		return nil
	}
	return fmt.Errorf("netscape provider requires 'path' setting")
}

// GetBookmarks parses the configured export file
func (np *NetscapeProvider) GetBookmarks(ctx context.Context) ([]bookmarks.Bookmark, error) {
	if !np.IsEnabled() {
		return nil, fmt.Errorf("netscape provider is not enabled or configured")
	}

	file, err := os.Open(np.path)
	if err != nil {
		return nil, fmt.Errorf("error opening bookmark export: %v", err)
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing bookmark export: %v", err)
	}

	var marks []bookmarks.Bookmark
	var folderStack []string

	// The export format nests folders as <H3> headers followed by a
	// <DL> block. Walk the raw node tree with a folder stack: push on
	// H3, pop when the enclosing DL closes.
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "h3" && n.FirstChild != nil {
			folderStack = append(folderStack, strings.TrimSpace(n.FirstChild.Data))
		}

		if n.Type == html.ElementNode && n.Data == "a" {
			b := bookmarks.Bookmark{Source: np.Name()}
			for _, attr := range n.Attr {
				switch strings.ToLower(attr.Key) {
				case "href":
					b.URL = attr.Val
				case "add_date":
					if secs, err := strconv.ParseInt(attr.Val, 10, 64); err == nil {
						b.CreatedAt = time.Unix(secs, 0)
					}
				case "tags":
					for _, tag := range strings.Split(attr.Val, ",") {
						if tag = strings.TrimSpace(tag); tag != "" {
							b.Tags = append(b.Tags, tag)
						}
					}
				}
			}
			if n.FirstChild != nil {
				b.Title = strings.TrimSpace(n.FirstChild.Data)
			}
			if len(folderStack) > 0 {
				b.Folder = folderStack[len(folderStack)-1]
			}
			if b.CreatedAt.IsZero() {
				b.CreatedAt = time.Now()
			}

			if b.URL != "" {
				marks = append(marks, b)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && n.Data == "dl" {
			if len(folderStack) > 0 {
				folderStack = folderStack[:len(folderStack)-1]
			}
		}
	}

	for _, root := range doc.Nodes {
		walk(root)
	}

	return marks, nil
}
