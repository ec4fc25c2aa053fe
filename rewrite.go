package pseudostates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	engine "github.com/yacobolo/pseudostates/internal/pseudostates"
)

// Rewrite is the main entry point: it adds forced-state selectors to every
// stylesheet matched by config.
func Rewrite(config Config) (*RewriteResult, error) {
	result := &RewriteResult{}
	log := config.logger().Named("rewrite")

	rw, err := config.newRewriter()
	if err != nil {
		return nil, fmt.Errorf("configure rewriter: %w", err)
	}

	// 1. Scan stylesheet files
	files, stats, err := scanCSSFiles(config)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = len(files)

	log.Debug("Found stylesheets",
		zap.Int("files", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	// 2. Patch every sheet with one patcher so the rewrite flag and the
	// warning store span the whole run
	opts := []engine.PatcherOption{
		engine.WithLogger(log),
		engine.WithMaxRules(config.maxRules()),
	}
	if config.Diagnostics != nil {
		opts = append(opts, engine.WithDiagnostics(config.Diagnostics))
	}
	patcher := engine.NewPatcher(rw, opts...)
	hosts := engine.NewHostSet()

	var errs error
	for _, file := range files {
		n, err := rewriteFile(config, patcher, hosts, file, result)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if n > 0 {
			result.FilesRewritten++
			result.RulesRewritten += n
		}
	}

	result.ShadowHosts = hosts.Hosts()
	result.Errors = multierr.Errors(errs)
	for _, e := range result.Errors {
		result.Warnings = append(result.Warnings, e.Error())
	}

	log.Debug("Rewrite complete",
		zap.Int("files", result.FilesRewritten),
		zap.Int("rules", result.RulesRewritten))

	return result, nil
}

// rewriteFile patches a single stylesheet file and writes the result.
// It returns the number of rewritten rules.
func rewriteFile(config Config, patcher *engine.Patcher, hosts *engine.HostSet, file string, result *RewriteResult) (int, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(file)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", file, err)
	}

	sheet := engine.ParseSheet(file, string(content))

	var shadow *engine.ShadowRoot
	if config.ShadowDOM {
		shadow = &engine.ShadowRoot{Host: shadowHostFor(config, file)}
	}

	patched := patcher.PatchSheet(sheet, shadow, hosts)
	if patched.Capped {
		result.CappedFiles = append(result.CappedFiles, file)
	}
	if patched.Err != nil {
		// Already reported through diagnostics; the sheet may be partially
		// rewritten, which is still worth writing out
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", file, patched.Err))
	}

	dest, err := outputPath(config, file)
	if err != nil {
		return 0, err
	}

	// In place, untouched files keep their original formatting
	if patched.Rewritten == 0 && dest == file {
		return 0, nil
	}

	out := sheet.String()
	if patched.Rewritten == 0 {
		out = string(content)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, fmt.Errorf("create output dir for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", dest, err)
	}

	return patched.Rewritten, nil
}

// shadowHostFor names the shadow host of a file: the configured host, or the
// file name without extension ("my-button.css" -> "my-button").
func shadowHostFor(config Config, file string) string {
	if config.ShadowHost != "" {
		return config.ShadowHost
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
