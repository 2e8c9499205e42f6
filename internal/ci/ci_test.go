// internal/ci/ci_test.go
package ci

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := out
	out = buf
	t.Cleanup(func() { out = prev })
	return buf
}

func TestSetOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", path)

	require.NoError(t, SetOutput("message-id", "msg-123"))
	require.NoError(t, SetOutput("sequence-number", "42"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "message-id=msg-123\nsequence-number=42\n", string(content))
}

func TestSetOutput_MultilineValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", path)

	require.NoError(t, SetOutput("body", "line1\nline2"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "body<<ghadelimiter\nline1\nline2\nghadelimiter\n", string(content))
}

func TestSetOutput_LegacyFallback(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")
	buf := captureOutput(t)

	require.NoError(t, SetOutput("message-id", "msg-123"))
	assert.Equal(t, "::set-output name=message-id::msg-123\n", buf.String())
}

func TestAnnotations(t *testing.T) {
	buf := captureOutput(t)

	Warning("value will be ignored")
	Error("publish failed")

	assert.Contains(t, buf.String(), "::warning::value will be ignored\n")
	assert.Contains(t, buf.String(), "::error::publish failed\n")
}

func TestAnnotations_EscapesCommandSyntax(t *testing.T) {
	buf := captureOutput(t)

	Warning("50% done\nnext line")

	assert.Equal(t, "::warning::50%25 done%0Anext line\n", buf.String())
}
