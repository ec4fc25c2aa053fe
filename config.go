package pseudostates

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	engine "github.com/yacobolo/pseudostates/internal/pseudostates"
)

// Config holds rewrite and check configuration
type Config struct {
	SourceDir              string   // "web/styles"
	OutputDir              string   // "dist/preview" (empty: rewrite in place)
	Includes               []string // ["**/*.css"]
	Excludes               []string // ["vendor/**"]
	PseudoStates           []string // ["hover", "focus"] (default: built-in set)
	ExcludedPseudoElements []string // ["::-webkit-slider-thumb"] (default: built-in set)
	ClassPrefix            string   // "pseudo-" (default: "pseudo-")
	MaxRules               int      // Style rules examined per sheet (default: 1000)
	ShadowDOM              bool     // Treat every file as a shadow root stylesheet
	ShadowHost             string   // Host name for shadow sheets (default: file base name)
	RespectGitignore       bool     // Skip files matched by ./.gitignore
	Verbose                bool     // Enable debug logging

	Logger      *zap.Logger        // Defaults to zap.L()
	Diagnostics engine.Diagnostics // Defaults to the process-wide warn-once sink
}

// RewriteResult contains rewrite stats
type RewriteResult struct {
	FilesScanned   int
	FilesRewritten int      // Files written with at least one rewritten rule
	RulesRewritten int      // Style rules replaced across all files
	CappedFiles    []string // Files that hit the per-sheet rule cap
	ShadowHosts    []string // Hosts whose shadow sheets were rewritten
	Warnings       []string
	Errors         []error
}

// Re-exported engine types used by the public API
type (
	CheckResult  = engine.CheckResult
	Issue        = engine.Issue
	OutputFormat = engine.OutputFormat
	ReportConfig = engine.ReportConfig
)

// Output formats
const (
	OutputIssues  = engine.OutputIssues
	OutputSummary = engine.OutputSummary
	OutputJSON    = engine.OutputJSON
)

// logger returns the configured logger, falling back to zap's global one.
// Debug entries are dropped unless Verbose is set.
func (c Config) logger() *zap.Logger {
	log := c.Logger
	if log == nil {
		log = zap.L()
	}
	if !c.Verbose {
		log = log.WithOptions(zap.IncreaseLevel(zapcore.InfoLevel))
	}
	return log
}

// newRewriter builds the selector engine from config
func (c Config) newRewriter() (*engine.Rewriter, error) {
	return engine.NewRewriter(engine.RewriterConfig{
		PseudoStates:           c.PseudoStates,
		ExcludedPseudoElements: c.ExcludedPseudoElements,
		ClassPrefix:            c.ClassPrefix,
	})
}

// maxRules returns the effective per-sheet rule cap
func (c Config) maxRules() int {
	if c.MaxRules > 0 {
		return c.MaxRules
	}
	return engine.DefaultMaxRules
}
