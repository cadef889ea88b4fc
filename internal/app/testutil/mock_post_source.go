package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wp2mongo/internal/app/model"
)

// MockPostSource is a testify/mock WordPress connection
type MockPostSource struct {
	mock.Mock
}

func NewMockPostSource() *MockPostSource {
	return &MockPostSource{}
}

func (m *MockPostSource) FetchPublishedPosts(ctx context.Context) ([]model.WordPressRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.WordPressRow)
	return rows, args.Error(1)
}

func (m *MockPostSource) Close() error {
	return m.Called().Error(0)
}
