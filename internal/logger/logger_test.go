package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Debug("sending request", "url", "http://example")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "url=http://example")
}

func TestNew_DebugDisabled(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithLevel(t *testing.T) {
	tests := []struct {
		level     string
		wantWarn  bool
		wantInfo  bool
		wantError bool
	}{
		{"warn", true, false, true},
		{"ERROR", false, false, true},
		{"bogus", true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithLevel(&buf, tt.level)
			log.Info("info-msg")
			log.Warn("warn-msg")
			log.Error("error-msg")

			out := buf.String()
			assert.Equal(t, tt.wantInfo, bytes.Contains([]byte(out), []byte("info-msg")))
			assert.Equal(t, tt.wantWarn, bytes.Contains([]byte(out), []byte("warn-msg")))
			assert.Equal(t, tt.wantError, bytes.Contains([]byte(out), []byte("error-msg")))
		})
	}
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := Discard()
	assert.Same(t, l, OrDiscard(l))
}
