package model

import "database/sql"

// Post is the canonical shape written to the posts collection
type Post struct {
	Title      string   `json:"title" bson:"title"`
	Content    string   `json:"content" bson:"content"`
	Categories []string `json:"categories" bson:"categories"`
}

// WordPressRow is one row of the published posts query. Categories holds the
// comma-joined term names, NULL when the post has none.
type WordPressRow struct {
	Title      string
	Content    string
	Categories sql.NullString
}
