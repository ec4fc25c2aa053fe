package pseudostates

// PseudoState names an interaction state that can be forced with a class,
// e.g. "hover" for :hover.
type PseudoState = string

// DefaultClassPrefix is prepended to a state name to form the forcing class
// ("hover" -> ".pseudo-hover").
const DefaultClassPrefix = "pseudo-"

// DefaultMaxRules caps the number of style rules examined per stylesheet.
const DefaultMaxRules = 1000

var (
	// Ordered roughly by how often they show up in component CSS.
	defaultPseudoStates = []PseudoState{
		"hover",
		"active",
		"focus-visible",
		"focus-within",
		"focus",
		"visited",
		"link",
		"target",
	}

	// Pseudo-elements where a state class has no element to land on.
	defaultExcludedPseudoElements = []string{
		"::-webkit-scrollbar-thumb",
		"::-webkit-slider-thumb",
	}
)

// DefaultPseudoStates returns a copy of the built-in pseudo-state names.
func DefaultPseudoStates() []PseudoState {
	return append([]PseudoState(nil), defaultPseudoStates...)
}

// DefaultExcludedPseudoElements returns a copy of the built-in excluded
// pseudo-element suffixes.
func DefaultExcludedPseudoElements() []string {
	return append([]string(nil), defaultExcludedPseudoElements...)
}

// RewriterConfig holds the process-wide constants a Rewriter is built from
type RewriterConfig struct {
	PseudoStates           []PseudoState // ["hover", "focus", ...] (default: DefaultPseudoStates)
	ExcludedPseudoElements []string      // ["::-webkit-slider-thumb"] (default: DefaultExcludedPseudoElements)
	ClassPrefix            string        // "pseudo-" (default: DefaultClassPrefix)
}

// ShadowRoot marks a stylesheet as belonging to an isolated subtree whose
// host is identified by Host.
type ShadowRoot struct {
	Host string // "my-button", "app-card#3"
}

// PatchResult describes what PatchSheet did to a single stylesheet
type PatchResult struct {
	Rewritten      int   // Style rules replaced with rewritten selectors
	Examined       int   // Style rules looked at (bounded by the rule cap)
	AlreadyPatched bool  // Sheet was processed by this patcher before
	Capped         bool  // Rule cap was hit, remaining rules left untouched
	Err            error // Access or mutation failure that stopped processing
}

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows one line per rewritable rule (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows per-file counts only
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// ReportConfig controls how check results are printed
type ReportConfig struct {
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (pseudostates) suffix (default: true)
	UseColors        bool // Force color output
	ShowReplacements bool // Show the rewritten selector list under each issue
}
