package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metricTestTotal = NewCounterVec(
	CounterOpts{
		Namespace: Namespace,
		Subsystem: "test",
		Name:      "textfile_total",
	},
	[]string{FieldResult},
)

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	metricTestTotal.WithLabelValues("ok").Add(3)

	path := filepath.Join(t.TempDir(), "api_usage.prom")
	require.NoError(t, WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `api_usage_test_textfile_total{result="ok"} 3`)
}

func TestWriteTextfile_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "api_usage.prom")
	assert.Error(t, WriteTextfile(path))
}
