package pseudostates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates files (relative path -> content) under dir
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excludes []string
		expected bool
	}{
		{
			name:     "no excludes",
			path:     "/src/styles/button.css",
			expected: false,
		},
		{
			name:     "excluded directory",
			path:     "/src/styles/vendor/reset.css",
			excludes: []string{"vendor/**"},
			expected: true,
		},
		{
			name:     "exclude matches relative to source",
			path:     "/src/styles/components/vendor.css",
			excludes: []string{"vendor/**"},
			expected: false,
		},
		{
			name:     "excluded file pattern",
			path:     "/src/styles/components/card.min.css",
			excludes: []string{"**/*.min.css"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkipFile(tt.path, "/src/styles", tt.excludes, true)
			require.Equal(t, tt.expected, got, "shouldSkipFile(%q)", tt.path)
		})
	}
}

func TestScanCSSFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"base.css":                 "a {}",
		"components/button.css":    "button {}",
		"components/button.css.go": "package x",
		"vendor/reset.css":         "* {}",
	})

	files, stats, err := scanCSSFiles(Config{
		SourceDir: dir,
		Excludes:  []string{"vendor/**"},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "base.css"),
		filepath.Join(dir, "components", "button.css"),
	}, files)
	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)
}

func TestScanCSSFiles_OverlappingIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"components/button.css": "button {}",
	})

	files, _, err := scanCSSFiles(Config{
		SourceDir: dir,
		Includes:  []string{"**/*.css", "components/*.css"},
	})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestOutputPath(t *testing.T) {
	inPlace, err := outputPath(Config{SourceDir: "/src"}, "/src/a/b.css")
	require.NoError(t, err)
	assert.Equal(t, "/src/a/b.css", inPlace)

	mirrored, err := outputPath(Config{SourceDir: "/src", OutputDir: "/out"}, "/src/a/b.css")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "a", "b.css"), mirrored)
}
