package mocks

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"
)

// MockMediaService is a mock implementation of service.MediaService.
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (string, error) {
	args := m.Called(ctx, file, header, folder)
	return args.String(0), args.Error(1)
}
