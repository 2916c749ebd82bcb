package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/mattwebdev/devcamper/internal/pkg/logger"
)

// LocalStorage stores photos on the local filesystem under a base directory.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// SavePhoto writes the uploaded file to basePath under the given filename.
// An existing file with the same name is overwritten, so re-uploading a
// bootcamp photo replaces the previous one.
func (ls *LocalStorage) SavePhoto(fileHeader *multipart.FileHeader, filename string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dstPath := filepath.Join(ls.basePath, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", filename).Msg("Photo saved")
	return filename, nil
}

// DeletePhoto removes a stored photo. Missing files are treated as already
// deleted.
func (ls *LocalStorage) DeletePhoto(filename string) error {
	if filename == "" {
		return nil
	}

	// Strip any path component from the stored value
	physicalPath := filepath.Join(ls.basePath, filepath.Base(filename))

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete photo")
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	return nil
}
