package logger

import (
	"os"
	"path/filepath"
	"testing"

	"healthscope/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitUsesConfiguredDirectory(t *testing.T) {
	root := t.TempDir()
	cfg := config.LoggingConfig{
		Directory:  "var/log",
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}

	log, err := Init(root, cfg)
	require.NoError(t, err)
	defer log.Sync()

	info, err := os.Stat(filepath.Join(root, "var", "log"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	log.Info("started")
	log.Warn("warned")
}
