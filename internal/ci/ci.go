// internal/ci/ci.go

// Package ci implements the runner-facing surface of the action: step
// outputs through the GITHUB_OUTPUT file and workflow-command annotations
// on stdout.
package ci

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// out is swapped in tests to capture workflow commands.
var out io.Writer = os.Stdout

// SetOutput records a named step output. Multi-line values use the heredoc
// delimiter form required by the runner.
func SetOutput(name, value string) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		// Older runners read the set-output command from stdout instead.
		fmt.Fprintf(out, "::set-output name=%s::%s\n", name, escapeData(value))
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer f.Close()

	if strings.Contains(value, "\n") {
		delimiter := "ghadelimiter"
		_, err = fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	} else {
		_, err = fmt.Fprintf(f, "%s=%s\n", name, value)
	}
	if err != nil {
		return fmt.Errorf("write output %s: %w", name, err)
	}
	return nil
}

// Warning emits a warning annotation visible in the step log.
func Warning(message string) {
	fmt.Fprintf(out, "::warning::%s\n", escapeData(message))
}

// Error emits an error annotation; the caller is responsible for the
// non-zero exit status.
func Error(message string) {
	fmt.Fprintf(out, "::error::%s\n", escapeData(message))
}

// escapeData escapes the characters the runner treats as command syntax.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}
