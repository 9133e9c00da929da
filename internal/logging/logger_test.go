package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, err := New("", true)
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "eomarket.log")
	logger, err := New(path, false)
	require.NoError(t, err)

	logger.Debug("hidden at info level")
	logger.Warn("navigation to unknown page ignored")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.True(t, strings.Contains(out, `"msg":"navigation to unknown page ignored"`), out)
	require.False(t, strings.Contains(out, "hidden at info level"))
}
