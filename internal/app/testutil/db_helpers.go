package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// wordPressSchema is the subset of the WordPress tables the published posts
// query touches, in DDL that both SQLite and MySQL accept
const wordPressSchema = `
CREATE TABLE wp_posts (
	ID INTEGER PRIMARY KEY,
	post_title TEXT NOT NULL,
	post_content TEXT NOT NULL,
	post_status VARCHAR(20) NOT NULL,
	post_type VARCHAR(20) NOT NULL
);
CREATE TABLE wp_terms (
	term_id INTEGER PRIMARY KEY,
	name VARCHAR(200) NOT NULL
);
CREATE TABLE wp_term_taxonomy (
	term_taxonomy_id INTEGER PRIMARY KEY,
	term_id INTEGER NOT NULL,
	taxonomy VARCHAR(32) NOT NULL
);
CREATE TABLE wp_term_relationships (
	object_id INTEGER NOT NULL,
	term_taxonomy_id INTEGER NOT NULL
);`

// wordPressSeed has three published posts (two, none and one category), a
// draft and a page. Only the published posts are expected back.
const wordPressSeed = `
INSERT INTO wp_posts (ID, post_title, post_content, post_status, post_type) VALUES
	(1, 'Hello', 'World', 'publish', 'post'),
	(2, 'Bye', 'Moon', 'publish', 'post'),
	(3, 'Draft', 'not yet', 'draft', 'post'),
	(4, 'About', 'about page', 'publish', 'page'),
	(5, 'Solo', '<p>one category</p>', 'publish', 'post');
INSERT INTO wp_terms (term_id, name) VALUES (1, 'tech'), (2, 'news');
INSERT INTO wp_term_taxonomy (term_taxonomy_id, term_id, taxonomy) VALUES
	(10, 1, 'category'),
	(11, 2, 'category');
INSERT INTO wp_term_relationships (object_id, term_taxonomy_id) VALUES
	(1, 10), (1, 11), (3, 10), (4, 11), (5, 11);`

// SeededPublishedPosts maps the title of every published post in the seed
// to its categories, sorted. The aggregate order is up to the database.
var SeededPublishedPosts = map[string][]string{
	"Hello": {"news", "tech"},
	"Bye":   {},
	"Solo":  {"news"},
}

// SetupWordPressSQLite creates a SQLite database file holding the WordPress
// tables, seeded with SeededPublishedPosts. SQLite's GROUP_CONCAT joins with
// ',' like MySQL's, so the production query runs unchanged against it.
func SetupWordPressSQLite(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "wordpress.sqlite")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to create SQLite test database: %v", err)
	}

	if _, err := db.Exec(wordPressSchema); err != nil {
		t.Fatalf("Failed to create WordPress tables: %v", err)
	}
	if _, err := db.Exec(wordPressSeed); err != nil {
		t.Fatalf("Failed to seed WordPress tables: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	return db
}
