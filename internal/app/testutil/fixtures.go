package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"wp2mongo/internal/app/model"
)

// ExampleRows is what the published posts query returns for a post with two
// categories and a post with none
var ExampleRows = []model.WordPressRow{
	{Title: "Hello", Content: "World", Categories: sql.NullString{String: "tech,news", Valid: true}},
	{Title: "Bye", Content: "Moon"},
}

// ExamplePosts is ExampleRows after mapping
var ExamplePosts = []model.Post{
	{Title: "Hello", Content: "World", Categories: []string{"tech", "news"}},
	{Title: "Bye", Content: "Moon", Categories: []string{}},
}

// TestPosts covers HTML content and labels that must pass through untouched
var TestPosts = []model.Post{
	{
		Title:      "Getting started with Go",
		Content:    "<p>Install the toolchain, then <code>go mod init</code>.</p>",
		Categories: []string{"go", "tutorial"},
	},
	{
		Title:      "Release notes",
		Content:    "<ul><li>Faster builds</li></ul>",
		Categories: []string{" news", "news"},
	},
	{
		Title:      "Untagged",
		Content:    "",
		Categories: []string{},
	},
}

// WriteJSONPosts marshals posts into a file under t.TempDir and returns its path
func WriteJSONPosts(t *testing.T, posts []model.Post) string {
	t.Helper()

	data, err := json.Marshal(posts)
	if err != nil {
		t.Fatalf("marshal posts: %v", err)
	}
	return WriteFile(t, "posts.json", string(data))
}

// WriteFile writes raw content under t.TempDir and returns its path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
