// Package pseudostates rewrites CSS rules that target pseudo-class states so
// a preview tool can force those states by toggling a class.
//
// A rule such as
//
//	a:hover { color: red; }
//
// becomes
//
//	a:hover, a.pseudo-hover, .pseudo-hover a { color: red; }
//
// so the original behaviour is kept while adding "pseudo-hover" to the
// element (or to any ancestor) forces the hover styling. Stylesheets that
// live inside a shadow tree forward the state from the host instead:
//
//	a:hover, a.pseudo-hover, :host(.pseudo-hover) a { color: red; }
//
// # Rewriting files
//
//	config := pseudostates.Config{
//		SourceDir: "web/styles",
//		OutputDir: "dist/preview",
//		Includes:  []string{"**/*.css"},
//	}
//	result, err := pseudostates.Rewrite(config)
//
// # Checking
//
// Check reports every rule that would be rewritten without touching files:
//
//	result, err := pseudostates.Check(config)
//	pseudostates.WriteOutput(os.Stdout, result, pseudostates.OutputIssues, reportConfig)
//
// # CLI Tool
//
//	go install github.com/yacobolo/pseudostates/cmd/pseudostates@latest
//
// The selector engine itself lives in internal/pseudostates and works on any
// Stylesheet implementation, not only files.
package pseudostates
