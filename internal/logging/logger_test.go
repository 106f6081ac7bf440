package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/assistkit/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{" DEBUG ", log.DebugLevel},
		{"Info", log.InfoLevel},
		{"fatal", log.InfoLevel},
		{"invalid", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, logging.ParseLevel(tt.level))
			assert.Equal(t, tt.want, logging.New(tt.level).GetLevel())
		})
	}
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	logger := logging.NewInteractive()
	require.NotNil(t, logger)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

// Not parallel: these modify the package default.
func TestDefault(t *testing.T) {
	original := logging.Default()
	require.NotNil(t, original)
	t.Cleanup(func() { logging.SetDefault(original) })

	replacement := logging.New("info")
	logging.SetDefault(replacement)
	assert.Same(t, replacement, logging.Default())

	logging.SetLevel("debug")
	assert.Equal(t, log.DebugLevel, replacement.GetLevel())

	logging.SetLevel("error")
	assert.Equal(t, log.ErrorLevel, replacement.GetLevel())
}

func TestContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug")

	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
	assert.NotNil(t, logging.FromContext(context.Background()))

	ctx = logging.With(ctx, logging.FieldPath, "src/main.rs")
	logging.FromContext(ctx).Debug("parsed", logging.FieldLanguage, "rust")

	assert.Contains(t, buf.String(), "parsed")
	assert.Contains(t, buf.String(), "path=src/main.rs")
	assert.Contains(t, buf.String(), "language=rust")
}
