package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_Levels(t *testing.T) {
	ctx := context.Background()

	assert.True(t, SetupLogger(envLocal, "").Enabled(ctx, slog.LevelDebug))
	assert.True(t, SetupLogger(envDev, "").Enabled(ctx, slog.LevelDebug))
	assert.False(t, SetupLogger("unknown", "").Enabled(ctx, slog.LevelDebug))
}

func TestSetupLogger_ProdWritesFile(t *testing.T) {
	dir := t.TempDir()

	lg := SetupLogger(envProd, dir)
	assert.False(t, lg.Enabled(context.Background(), slog.LevelDebug))

	lg.Info("hello")

	data, err := os.ReadFile(filepath.Join(dir, logFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
