package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicLogging(t *testing.T) {
	// Capture output
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "warn")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "error")
	assert.Contains(t, buf.String(), "error message")
	buf.Reset()

	// Formatted logging
	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
	buf.Reset()

	// Trailing args are appended
	l.Info("opened", "/site/page.html")
	assert.Contains(t, buf.String(), "opened: /site/page.html")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	// Test with debug off
	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())
	buf.Reset()

	// Test with debug on
	SetDebug(true)
	defer SetDebug(false)
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "debug")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	l.Debugf("formatted %d", 7)
	assert.Contains(t, buf.String(), "formatted 7")
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.WithFields(F("document", "/config.xml"), F("types", 3)).Info("resolved")
	out := buf.String()
	assert.Contains(t, out, "resolved")
	assert.Contains(t, out, "document")
	assert.Contains(t, out, "/config.xml")
	assert.Contains(t, out, "types=3")
}

func TestPackageLevelLogging(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Info("package level %s", "info")
	assert.Contains(t, buf.String(), "package level info")
	buf.Reset()

	LogWithFields(F("key", "value")).Warn("with fields")
	assert.Contains(t, buf.String(), "with fields")
	assert.Contains(t, buf.String(), "key=value")
}
