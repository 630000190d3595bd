package logging

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel
	cfg.Output = &buf

	ctx := WithContext(context.Background(), New(cfg))
	ctx = WithComponent(ctx, "tabs")
	ctx = WithTabID(ctx, "tab-1")
	FromContext(ctx).Debug().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"tabs"`)
	assert.Contains(t, out, `"tab_id":"tab-1"`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info().Msg("dropped")
}

func TestTruncateURL(t *testing.T) {
	assert.Equal(t, "https://a.com", TruncateURL("https://a.com", 50))
	assert.Equal(t, "https:...", TruncateURL("https://example.com", 9))
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "omnitab.log")
	logger, closer, err := NewWithFile(path, "info")
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("written")
	assert.FileExists(t, path)
}
