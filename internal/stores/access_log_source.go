package stores

import (
	"context"
	"fmt"
	"io"
	"strings"

	"api-usage-analytics/internal/shared/filestorages"

	"github.com/klauspost/compress/gzip"
)

const gzipSuffix = ".gz"

//go:generate mockgen -source=access_log_source.go -destination=./mocks/access_log_source_mock.go -package=mocks
type AccessLogSource interface {
	// Open returns the decoded content of the access log at path.
	// Paths ending in .gz are gunzipped transparently.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type accessLogSource struct {
	fileStorage filestorages.FileStorage
}

func NewAccessLogSource(fileStorage filestorages.FileStorage) AccessLogSource {
	return &accessLogSource{fileStorage: fileStorage}
}

func (s *accessLogSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := s.fileStorage.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open access log: %w", err)
	}

	if !strings.HasSuffix(strings.ToLower(path), gzipSuffix) {
		return file, nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open gzip access log: %w", err)
	}

	return &gzipReadCloser{Reader: gz, file: file}, nil
}

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	file io.Closer
}

func (r *gzipReadCloser) Close() error {
	gzErr := r.Reader.Close()
	fileErr := r.file.Close()
	if gzErr != nil {
		return gzErr
	}
	return fileErr
}
