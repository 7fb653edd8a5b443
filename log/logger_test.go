package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, enableDebug bool, f func()) string {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	orig := EnableDebugLog
	EnableDebugLog = enableDebug
	defer func() {
		SetOutput(os.Stderr)
		EnableDebugLog = orig
	}()

	f()
	return buf.String()
}

func TestDebug_Disabled(t *testing.T) {
	out := captureOutput(t, false, func() {
		Debug("hidden")
		Debugf("hidden %d", 1)
		Debugln("hidden")
		WithField("n", 35).Debug("hidden")
	})
	require.Empty(t, out)
}

func TestDebug_Enabled(t *testing.T) {
	out := captureOutput(t, true, func() {
		Debugf("value %d", 1)
		WithField("n", 35).Debug("start")
	})
	require.Contains(t, out, "value 1")
	require.Contains(t, out, "level=debug")
	require.Contains(t, out, "n=35")
}

func TestPrint(t *testing.T) {
	out := captureOutput(t, false, func() {
		Printf("shown %s", "always")
	})
	require.Contains(t, out, "shown always")
	require.Contains(t, out, "level=info")
	require.NotContains(t, out, "time=")
}

func TestEntryPrint(t *testing.T) {
	out := captureOutput(t, false, func() {
		WithField("program", "fibrec").Print("failed")
	})
	require.Contains(t, out, "level=info")
	require.Contains(t, out, "program=fibrec")
	require.Contains(t, out, "msg=failed")
}
