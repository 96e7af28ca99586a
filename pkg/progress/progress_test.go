package progress

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		suite    string
		wantFile string
	}{
		{name: "auth suite", suite: "auth", wantFile: "run-auth.log"},
		{name: "movie suite", suite: "movie", wantFile: "run-movie.log"},
		{name: "review suite", suite: "review", wantFile: "run-review.log"},
		{name: "all suites", suite: "all", wantFile: "run.log"},
		{name: "no suite", suite: "", wantFile: "run.log"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			l, err := NewLogger(Config{ReportDir: dir, Suite: tc.suite, BaseURL: "https://cinestech.me"})
			require.NoError(t, err)
			defer l.Close()

			assert.Equal(t, tc.wantFile, filepath.Base(l.Path()))

			// verify header written
			content, err := os.ReadFile(l.Path())
			require.NoError(t, err)
			assert.Contains(t, string(content), "# Cinecheck Run Log")
			assert.Contains(t, string(content), "Target: https://cinestech.me")
		})
	}
}

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	l, err := NewLogger(Config{ReportDir: t.TempDir(), Suite: "auth", NoColor: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	var buf bytes.Buffer
	l.stdout = &buf
	return l, &buf
}

func TestLogger_Print(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Print("test message %d", 42)

	content, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "test message 42")
	assert.Contains(t, buf.String(), "test message 42")
}

func TestLogger_PrintRaw(t *testing.T) {
	l, buf := newTestLogger(t)

	l.PrintRaw("raw output")

	content, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "raw output")
	assert.Contains(t, buf.String(), "raw output")
}

func TestLogger_PrintAligned(t *testing.T) {
	l, buf := newTestLogger(t)

	l.PrintAligned("first line\nsecond line\nthird line")

	content, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	// check file has timestamps and proper formatting
	assert.Contains(t, string(content), "] first line")
	assert.Contains(t, string(content), "second line")
	assert.Contains(t, string(content), "third line")

	output := buf.String()
	assert.Contains(t, output, "first line")
	assert.Contains(t, output, "second line")
	assert.True(t, strings.HasSuffix(output, "\n"), "output should end with newline")
}

func TestLogger_PrintAligned_Empty(t *testing.T) {
	l, buf := newTestLogger(t)

	l.PrintAligned("") // empty string should do nothing

	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Error("something failed: %s", "reason")

	content, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "ERROR: something failed: reason")
	assert.Contains(t, buf.String(), "ERROR: something failed: reason")
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Warn("warning message")

	content, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "WARN: warning message")
	assert.Contains(t, buf.String(), "WARN: warning message")
}

func TestLogger_SetPhase(t *testing.T) {
	// enable colors for this test
	origNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = origNoColor }()

	l, err := NewLogger(Config{ReportDir: t.TempDir(), Suite: "all"})
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	var buf bytes.Buffer
	l.stdout = &buf

	l.SetPhase(PhaseAuth)
	l.Print("auth output")

	l.SetPhase(PhaseMovie)
	l.Print("movie output")

	l.SetPhase(PhaseReview)
	l.Print("review output")

	output := buf.String()
	// check for ANSI escape sequences (color codes start with \033[)
	assert.Contains(t, output, "\033[")
	assert.Contains(t, output, "auth output")
	assert.Contains(t, output, "movie output")
	assert.Contains(t, output, "review output")
}

func TestLogger_ColorDisabled(t *testing.T) {
	origNoColor := color.NoColor
	defer func() { color.NoColor = origNoColor }()

	l, buf := newTestLogger(t)

	l.SetPhase(PhaseAuth)
	l.Print("no color output")

	output := buf.String()
	assert.NotContains(t, output, "\033[")
	assert.Contains(t, output, "no color output")
}

func TestLogger_Elapsed(t *testing.T) {
	l, _ := newTestLogger(t)

	elapsed := l.Elapsed()
	// go-humanize returns "now" for very short durations
	assert.NotEmpty(t, elapsed)
}

func TestLogger_Close(t *testing.T) {
	l, err := NewLogger(Config{ReportDir: t.TempDir(), Suite: "auth"})
	require.NoError(t, err)

	l.Print("some output")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "Completed:")
	assert.Contains(t, string(content), strings.Repeat("-", 60))
}

func TestRunLogFilename(t *testing.T) {
	tests := []struct {
		reportDir string
		suite     string
		want      string
	}{
		{"reports", "auth", filepath.Join("reports", "run-auth.log")},
		{"reports", "all", filepath.Join("reports", "run.log")},
		{"", "movie", "run-movie.log"},
		{"", "", "run.log"},
	}

	for _, tc := range tests {
		t.Run(tc.reportDir+"_"+tc.suite, func(t *testing.T) {
			assert.Equal(t, tc.want, runLogFilename(tc.reportDir, tc.suite))
		})
	}
}
