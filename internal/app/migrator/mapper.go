package migrator

import (
	"database/sql"
	"strings"

	"github.com/samber/lo"

	"wp2mongo/internal/app/model"
)

// SplitCategories turns the aggregated category string into a list. A NULL
// or empty aggregate gives an empty list, never [""]. Labels are kept as is.
func SplitCategories(categories sql.NullString) []string {
	if !categories.Valid || categories.String == "" {
		return []string{}
	}
	return strings.Split(categories.String, ",")
}

func ToPost(row model.WordPressRow) model.Post {
	return model.Post{
		Title:      row.Title,
		Content:    row.Content,
		Categories: SplitCategories(row.Categories),
	}
}

func ToPosts(rows []model.WordPressRow) []model.Post {
	return lo.Map(rows, func(row model.WordPressRow, _ int) model.Post {
		return ToPost(row)
	})
}
