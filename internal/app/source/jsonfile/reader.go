package jsonfile

import (
	"os"

	"github.com/goccy/go-json"

	"wp2mongo/internal/app/errors"
	"wp2mongo/internal/app/model"
)

// ReadPosts reads a JSON array of posts from path. Objects are expected to
// already use the title/content/categories field names; anything else is
// ignored and missing fields stay empty.
func ReadPosts(path string) ([]model.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(err, errors.ErrFileReadFailed)
	}

	var decoded []*model.Post
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrParseFailed), "decode %s", path)
	}
	if decoded == nil {
		return nil, errors.Wrapf(errors.Mark(errors.New("top level is null, expected an array"), errors.ErrParseFailed), "decode %s", path)
	}

	posts := make([]model.Post, 0, len(decoded))
	for i, p := range decoded {
		if p == nil {
			return nil, errors.Wrapf(errors.Mark(errors.Newf("element %d is null", i), errors.ErrParseFailed), "decode %s", path)
		}
		posts = append(posts, *p)
	}

	return posts, nil
}
