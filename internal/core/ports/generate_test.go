package ports_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateDirectives keeps every mock on the mockgen version pinned in go.mod.
func TestGenerateDirectives(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	const want = "//go:generate go run go.uber.org/mock/mockgen "
	found := 0
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := os.Open(name)
		require.NoError(t, err)

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "//go:generate") {
				continue
			}
			found++
			assert.True(t, strings.HasPrefix(line, want), "%s: %s", name, line)
			assert.Contains(t, line, "-source="+name, name)
		}
		require.NoError(t, scanner.Err())
		require.NoError(t, f.Close())
	}
	assert.Positive(t, found)
}
