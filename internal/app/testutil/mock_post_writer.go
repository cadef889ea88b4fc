package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"wp2mongo/internal/app/model"
)

// MockPostWriter is a testify/mock document store. Successful inserts are
// appended to an in-memory collection, mirroring an insert-only store.
type MockPostWriter struct {
	mock.Mock
	mu    sync.Mutex
	posts []model.Post
}

func NewMockPostWriter() *MockPostWriter {
	return &MockPostWriter{}
}

// InsertMany expects a single error return value to be configured
func (m *MockPostWriter) InsertMany(ctx context.Context, posts []model.Post) (int, error) {
	args := m.Called(ctx, posts)
	if err := args.Error(0); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, posts...)
	return len(posts), nil
}

// Posts returns everything inserted so far, in insertion order
func (m *MockPostWriter) Posts() []model.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Post(nil), m.posts...)
}
