package pseudostates

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	engine "github.com/yacobolo/pseudostates/internal/pseudostates"
)

// Check reports every rule Rewrite would change, without writing anything
func Check(config Config) (*CheckResult, error) {
	result := &CheckResult{}
	log := config.logger().Named("check")

	rw, err := config.newRewriter()
	if err != nil {
		return nil, fmt.Errorf("configure rewriter: %w", err)
	}

	files, stats, err := scanCSSFiles(config)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = len(files)

	log.Debug("Found stylesheets",
		zap.Int("files", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	var errs error
	for _, file := range files {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("read %s: %w", file, err))
			continue
		}

		sheet := engine.ParseSheet(GetRelativePath(file), string(content))
		engine.InspectSheet(rw, sheet, config.ShadowDOM, config.maxRules(), result)
	}

	for _, e := range multierr.Errors(errs) {
		result.Warnings = append(result.Warnings, e.Error())
	}

	return result, nil
}
