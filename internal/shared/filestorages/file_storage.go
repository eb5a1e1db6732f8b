package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrFileAlreadyExists = errors.New("file already exists")
	ErrInvalidPath       = errors.New("invalid file path")
)

type PutResult struct {
	Path         string
	BytesWritten int64
}

type PutOptions struct {
	AllowOverwrite bool
}

// FileStorage reads and publishes whole files on the local filesystem.
// Put never leaves a partially written file at the destination path.
//
//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Put(ctx context.Context, path string, r io.Reader, opts PutOptions) (*PutResult, error)
}

type fileStorage struct{}

func NewFileStorage() FileStorage {
	return &fileStorage{}
}

func (s *fileStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := s.validatePath(path); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}

	return file, nil
}

func (s *fileStorage) Put(ctx context.Context, path string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := s.validatePath(path); err != nil {
		return nil, err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}
	if opts.AllowOverwrite {
		return s.putOverwrite(ctx, path, r)
	}
	return s.putNoOverwrite(ctx, path, r)
}

func (s *fileStorage) validatePath(path string) error {
	if path == "" {
		return ErrInvalidPath
	}
	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == string(filepath.Separator) {
		return ErrInvalidPath
	}
	return nil
}

// writeTemp copies r into a temp file next to finalPath and returns its name.
// The caller owns removing the temp file.
func (s *fileStorage) writeTemp(ctx context.Context, finalPath string, r io.Reader) (string, int64, error) {
	dir := filepath.Dir(finalPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", 0, err
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close() }()

	n, err := io.Copy(tmp, r)
	if err != nil {
		if ctx.Err() != nil {
			return tmpPath, n, ctx.Err()
		}
		return tmpPath, n, err
	}

	if err := tmp.Sync(); err != nil {
		return tmpPath, n, err
	}
	if err := tmp.Close(); err != nil {
		return tmpPath, n, err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return tmpPath, n, err
	}

	return tmpPath, n, nil
}

func (s *fileStorage) putOverwrite(ctx context.Context, path string, r io.Reader) (*PutResult, error) {
	finalPath := filepath.Clean(path)

	tmpPath, n, err := s.writeTemp(ctx, finalPath, r)
	if tmpPath != "" {
		defer func() { _ = os.Remove(tmpPath) }()
	}
	if err != nil {
		return nil, err
	}

	// Atomic replace (POSIX)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return nil, err
	}

	return &PutResult{Path: path, BytesWritten: n}, nil
}

func (s *fileStorage) putNoOverwrite(ctx context.Context, path string, r io.Reader) (*PutResult, error) {
	finalPath := filepath.Clean(path)

	tmpPath, n, err := s.writeTemp(ctx, finalPath, r)
	if tmpPath != "" {
		defer func() { _ = os.Remove(tmpPath) }()
	}
	if err != nil {
		return nil, err
	}

	// Atomic publish-if-not-exists
	if err := os.Link(tmpPath, finalPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, ErrFileAlreadyExists
		}
		return nil, err
	}

	return &PutResult{Path: path, BytesWritten: n}, nil
}
