package pseudostates

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped by excludes or .gitignore
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// No .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Exclude patterns, matched against the path relative to sourceDir
// 2. Gitignore check, only for relative paths (paths within the project)
func shouldSkipFile(path, sourceDir string, excludes []string, respectGitignore bool) bool {
	rel, err := filepath.Rel(sourceDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range excludes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	// Absolute paths (like /tmp/...) should not be affected by project gitignore
	if respectGitignore && !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// scanCSSFiles finds all stylesheet files under sourceDir matching includes
func scanCSSFiles(config Config) ([]string, ScanStats, error) {
	var files []string
	stats := ScanStats{}
	seen := make(map[string]bool)

	includes := config.Includes
	if len(includes) == 0 {
		includes = []string{"**/*.css"}
	}

	for _, pattern := range includes {
		// Use doublestar for ** glob support
		fullPattern := filepath.Join(config.SourceDir, pattern)
		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match, config.SourceDir, config.Excludes, config.RespectGitignore) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// outputPath maps a source file into config.OutputDir, mirroring its path
// relative to config.SourceDir. Without an OutputDir files are rewritten in
// place.
func outputPath(config Config, file string) (string, error) {
	if config.OutputDir == "" {
		return file, nil
	}
	rel, err := filepath.Rel(config.SourceDir, file)
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", file, err)
	}
	return filepath.Join(config.OutputDir, rel), nil
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
