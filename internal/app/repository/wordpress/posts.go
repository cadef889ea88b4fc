package wordpress

import (
	"context"
	"database/sql"

	"wp2mongo/internal/app/errors"
	"wp2mongo/internal/app/model"
)

// publishedPostsQuery returns one row per published post with its category
// names joined by commas. There is no ORDER BY, row order is up to the server.
const publishedPostsQuery = `
	SELECT p.post_title AS title, p.post_content AS content,
	       GROUP_CONCAT(t.name) AS categories
	FROM wp_posts p
	LEFT JOIN wp_term_relationships tr ON p.ID = tr.object_id
	LEFT JOIN wp_term_taxonomy tt ON tr.term_taxonomy_id = tt.term_taxonomy_id
	LEFT JOIN wp_terms t ON tt.term_id = t.term_id
	WHERE p.post_status = 'publish' AND p.post_type = 'post'
	GROUP BY p.ID`

type WordPressDB struct {
	db *sql.DB
}

func NewWordPressDB(db *sql.DB) *WordPressDB {
	return &WordPressDB{db: db}
}

func (w *WordPressDB) Close() error {
	return w.db.Close()
}

// FetchPublishedPosts runs the aggregating query and returns the raw rows
func (w *WordPressDB) FetchPublishedPosts(ctx context.Context) ([]model.WordPressRow, error) {
	rows, err := w.db.QueryContext(ctx, publishedPostsQuery)
	if err != nil {
		return nil, errors.Mark(err, errors.ErrQueryFailed)
	}
	defer rows.Close()

	var result []model.WordPressRow
	for rows.Next() {
		var row model.WordPressRow
		if err := rows.Scan(&row.Title, &row.Content, &row.Categories); err != nil {
			return nil, errors.Mark(err, errors.ErrScanFailed)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.Mark(err, errors.ErrQueryFailed), "rows iteration failed")
	}

	return result, nil
}
