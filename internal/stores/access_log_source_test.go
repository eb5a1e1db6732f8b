package stores

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"api-usage-analytics/internal/shared/filestorages"
	"api-usage-analytics/internal/shared/filestorages/mocks"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sampleLog = "[200][http://apis.daum.net/search/book?apikey=abc123&q=test][Chrome][2024-01-01 10:00:00]\n"

func TestAccessLogSource_Open_PlainFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.log")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0644))

	source := NewAccessLogSource(filestorages.NewFileStorage())
	rc, err := source.Open(context.Background(), path)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleLog, string(content))
}

func TestAccessLogSource_Open_GzipFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(sampleLog))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "input.log.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	source := NewAccessLogSource(filestorages.NewFileStorage())
	rc, err := source.Open(context.Background(), path)
	require.NoError(t, err)

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleLog, string(content))
	assert.NoError(t, rc.Close())
}

func TestAccessLogSource_Open_CorruptGzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.log.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0644))

	source := NewAccessLogSource(filestorages.NewFileStorage())
	_, err := source.Open(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open gzip access log")
}

func TestAccessLogSource_Open_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	mockFileStorage.EXPECT().
		Open(gomock.Any(), "missing.log").
		Return(nil, filestorages.ErrFileNotFound)

	source := NewAccessLogSource(mockFileStorage)
	_, err := source.Open(context.Background(), "missing.log")
	assert.ErrorIs(t, err, filestorages.ErrFileNotFound)
	assert.Contains(t, err.Error(), "failed to open access log")
}
