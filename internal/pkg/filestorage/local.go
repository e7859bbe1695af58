package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

// ErrInvalidKey is returned for keys that escape the storage root
var ErrInvalidKey = errors.New("invalid storage key")

// LocalStorage handles saving documents to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // Public URL prefix under which basePath is served
}

// NewLocalStorage creates a new LocalStorage instance and ensures basePath exists.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save copies the uploaded file into folder under a random name
func (ls *LocalStorage) Save(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, errors.New("no file provided")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	folder = strings.Trim(path.Clean("/"+folder), "/")
	dir := filepath.Join(ls.basePath, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
		return nil, fmt.Errorf("failed to create subdirectory: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	key := path.Join(folder, name)
	stored := &StoredFile{
		URL:      ls.urlFor(key),
		Key:      key,
		Filename: fileHeader.Filename,
		Size:     written,
	}

	logger.Debug().Str("filename", fileHeader.Filename).Str("key", key).Msg("Document saved")
	return stored, nil
}

// Delete removes a stored file. Deleting a missing file succeeds.
func (ls *LocalStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	physicalPath, err := ls.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// KeyFromURL converts a retrieval URL produced by this storage back into its key
func (ls *LocalStorage) KeyFromURL(url string) (string, bool) {
	prefix := ls.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

func (ls *LocalStorage) urlFor(key string) string {
	if ls.baseURL == "" {
		return path.Join("uploads", key)
	}
	return ls.baseURL + "/" + key
}

// resolve maps a key to a path inside basePath
func (ls *LocalStorage) resolve(key string) (string, error) {
	cleaned := path.Clean("/" + key)
	if cleaned == "/" {
		return "", ErrInvalidKey
	}
	full := filepath.Join(ls.basePath, filepath.FromSlash(strings.TrimPrefix(cleaned, "/")))
	rel, err := filepath.Rel(ls.basePath, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", ErrInvalidKey
	}
	return full, nil
}
