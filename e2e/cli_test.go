//go:build e2e

package e2e

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	out, code := runCinecheck(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "cinecheck")
}

func TestGenerateWorkbooks(t *testing.T) {
	dir := t.TempDir()

	out, code := runCinecheck(t, "--generate", "--cases-dir", dir)
	require.Equal(t, 0, code, "output:\n%s", out)
	for _, name := range []string{"auth_cases.xlsx", "movie_cases.xlsx", "review_cases.xlsx"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	// second run must not clobber workbooks
	out, code = runCinecheck(t, "--generate", "--cases-dir", dir)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "already exists")
}

func TestListCatalog(t *testing.T) {
	out, code := runCinecheck(t, "--list", "--suite", "movie")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "TC01")
	assert.Contains(t, out, "movie")
}
