package common

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "invalid", input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLoggerTo(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, slog.LevelInfo, "json"))

	LogInfo("categorized review", Fields{"plies": 12})
	LogDebug("hidden", nil)

	assert.Contains(t, buf.String(), `"msg":"categorized review"`)
	assert.Contains(t, buf.String(), `"plies":12`)
	assert.NotContains(t, buf.String(), "hidden")

	err := SetupLoggerTo(&buf, slog.LevelInfo, "xml")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestUserError(t *testing.T) {
	inner := fmt.Errorf("open review.json: %w", ErrInvalidReviewFile)
	err := NewUserError("Could not read the review", inner)

	assert.Equal(t, "Could not read the review: open review.json: invalid review file", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidReviewFile))
	assert.True(t, IsUserError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsUserError(inner))

	bare := &UserError{UserMessage: "Nothing to categorize"}
	assert.Equal(t, "Nothing to categorize", bare.Error())
}
