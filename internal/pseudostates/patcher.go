package pseudostates

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// HostSet collects shadow hosts whose stylesheets were rewritten and which
// therefore need their forced-state classes refreshed. Insertion order is
// preserved.
type HostSet struct {
	order []string
	seen  map[string]struct{}
}

// NewHostSet creates an empty HostSet
func NewHostSet() *HostSet {
	return &HostSet{seen: make(map[string]struct{})}
}

// Add records host, ignoring repeats
func (h *HostSet) Add(host string) {
	if h.seen == nil {
		h.seen = make(map[string]struct{})
	}
	if _, ok := h.seen[host]; ok {
		return
	}
	h.seen[host] = struct{}{}
	h.order = append(h.order, host)
}

// Has reports whether host was recorded
func (h *HostSet) Has(host string) bool {
	_, ok := h.seen[host]
	return ok
}

// Hosts returns the recorded hosts in insertion order
func (h *HostSet) Hosts() []string {
	return append([]string(nil), h.order...)
}

// Len returns the number of recorded hosts
func (h *HostSet) Len() int {
	return len(h.order)
}

// Patcher rewrites the style rules of stylesheets in place. Each stylesheet
// instance is processed at most once per Patcher; Stylesheet implementations
// must therefore be comparable (pointer types in practice).
type Patcher struct {
	rw       *Rewriter
	diag     Diagnostics
	log      *zap.Logger
	maxRules int

	mu      sync.Mutex
	patched map[Stylesheet]struct{}
}

// PatcherOption configures a Patcher
type PatcherOption func(*Patcher)

// WithDiagnostics routes warnings and errors to d instead of the shared
// process-wide sink.
func WithDiagnostics(d Diagnostics) PatcherOption {
	return func(p *Patcher) {
		p.diag = d
	}
}

// WithLogger sets the debug logger
func WithLogger(log *zap.Logger) PatcherOption {
	return func(p *Patcher) {
		if log != nil {
			p.log = log.Named("patcher")
		}
	}
}

// WithMaxRules overrides the per-sheet style rule cap
func WithMaxRules(n int) PatcherOption {
	return func(p *Patcher) {
		if n > 0 {
			p.maxRules = n
		}
	}
}

// NewPatcher creates a Patcher that rewrites selectors with rw
func NewPatcher(rw *Rewriter, opts ...PatcherOption) *Patcher {
	p := &Patcher{
		rw:       rw,
		log:      zap.NewNop(),
		maxRules: DefaultMaxRules,
		patched:  make(map[Stylesheet]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.diag == nil {
		p.diag = SharedWarnings()
	}
	return p
}

// markPatched sets the rewrite flag for sheet and reports whether it was
// unset before.
func (p *Patcher) markPatched(sheet Stylesheet) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.patched[sheet]; ok {
		return false
	}
	p.patched[sheet] = struct{}{}
	return true
}

// Patched reports whether sheet was already handed to PatchSheet
func (p *Patcher) Patched(sheet Stylesheet) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.patched[sheet]
	return ok
}

// PatchSheet adds forced-state alternatives to every style rule of sheet
// that targets a pseudo-state. shadow is nil for light DOM sheets; when set
// and at least one rule is rewritten, shadow.Host is added to hosts.
//
// Failures never propagate: access problems are warned once, anything else
// goes to the error channel, and the sheet is left partially rewritten.
func (p *Patcher) PatchSheet(sheet Stylesheet, shadow *ShadowRoot, hosts *HostSet) PatchResult {
	var result PatchResult

	if !p.markPatched(sheet) {
		result.AlreadyPatched = true
		return result
	}

	// Snapshot: replacements are delete+insert at the same index, so the
	// original indices stay valid for the whole walk.
	rules, err := sheet.Rules()
	if err != nil {
		result.Err = err
		if errors.Is(err, ErrAccessDenied) {
			p.diag.Warn(fmt.Sprintf("Can't access cssRules, likely due to CORS restrictions: %s", sheet.Href()))
		} else {
			p.diag.Error(err, sheet.Href())
		}
		return result
	}

	for index, rule := range rules {
		selector, ok := rule.SelectorText()
		if !ok {
			continue
		}

		if result.Examined == p.maxRules {
			result.Capped = true
			p.diag.Warn(fmt.Sprintf("Reached maximum of %d pseudo selectors per sheet, skipping the rest.", p.maxRules))
			break
		}
		result.Examined++

		rewritten, err := p.patchRule(sheet, index, rule, selector, shadow != nil)
		if err != nil {
			result.Err = err
			p.diag.Error(err, sheet.Href())
			break
		}
		if !rewritten {
			continue
		}

		result.Rewritten++
		if shadow != nil && hosts != nil {
			hosts.Add(shadow.Host)
		}
	}

	p.log.Debug("Patched stylesheet",
		zap.String("href", sheet.Href()),
		zap.Int("examined", result.Examined),
		zap.Int("rewritten", result.Rewritten),
		zap.Bool("capped", result.Capped))

	return result
}

// patchRule replaces the rule at index when its selector targets a
// pseudo-state. A failed insert puts the original rule back.
func (p *Patcher) patchRule(sheet Stylesheet, index int, rule Rule, selector string, shadow bool) (bool, error) {
	found, err := p.rw.Matcher().Contains(selector)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	newRule, err := p.rw.RewriteRule(rule.CSSText(), selector, shadow)
	if err != nil {
		return false, err
	}
	// Already carries every alternative
	if newRule == rule.CSSText() {
		return false, nil
	}

	if err := sheet.DeleteRule(index); err != nil {
		return false, fmt.Errorf("replace rule %d: %w", index, err)
	}
	if err := sheet.InsertRule(newRule, index); err != nil {
		if restoreErr := sheet.InsertRule(rule.CSSText(), index); restoreErr != nil {
			return false, fmt.Errorf("replace rule %d: %w (restore failed: %v)", index, err, restoreErr)
		}
		return false, fmt.Errorf("replace rule %d: %w", index, err)
	}

	p.log.Debug("Rewrote rule",
		zap.Int("index", index),
		zap.String("selector", selector))

	return true, nil
}
