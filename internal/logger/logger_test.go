package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SilentDropsInfo(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, true))

	Info("options resolved", "target", "-")
	Warn("header dropped", "token", "b@d:1")

	assert.NotContains(t, buf.String(), "options resolved")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "token=b@d:1")
}

func TestNew_LogsInfo(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, false))

	Info("options resolved", "target", "page.html")

	assert.Contains(t, buf.String(), `level=INFO msg="options resolved" target=page.html`)
}
