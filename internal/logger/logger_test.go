package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{input: "", want: zapcore.InfoLevel},
		{input: "info", want: zapcore.InfoLevel},
		{input: "  DEBUG  ", want: zapcore.DebugLevel},
		{input: "warn", want: zapcore.WarnLevel},
		{input: "warning", want: zapcore.WarnLevel},
		{input: "error", want: zapcore.ErrorLevel},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestNew(t *testing.T) {
	log, err := New("debug", true)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = New("shouting", false)
	require.Error(t, err)
}
