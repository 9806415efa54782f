// Package wizard holds the multi-step website form and submits it for generation.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/microcosm-cc/bluemonday"

	"ai_site_builder/internal/ai/prompts"
	"ai_site_builder/internal/extract"
	"ai_site_builder/internal/types"
)

const (
	FirstStep = 1
	LastStep  = 4

	// MinSections is how many sections must be chosen before submitting.
	MinSections = 3
)

var (
	ErrIncompleteStep = errors.New("incomplete step")
	ErrInFlight       = errors.New("a generation is already in progress")
)

var stepMessages = map[int]string{
	1: "Please enter your website purpose to continue.",
	2: "Please select at least 3 sections to continue.",
	3: "Please select color scheme, font style, and language to continue.",
}

// Generator sends a website description to the backend.
type Generator interface {
	GenerateWebsiteHTML(ctx context.Context, prompt string) (string, error)
}

// Wizard is the form state. It is safe for concurrent use.
type Wizard struct {
	mu   sync.Mutex
	spec types.WebsiteSpec
	step int

	inFlight atomic.Bool
}

func New() *Wizard {
	return &Wizard{
		spec: types.WebsiteSpec{Language: "English"},
		step: FirstStep,
	}
}

func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Spec returns a copy of the current answers.
func (w *Wizard) Spec() types.WebsiteSpec {
	w.mu.Lock()
	defer w.mu.Unlock()
	spec := w.spec
	spec.Sections = append([]string(nil), w.spec.Sections...)
	return spec
}

// Load replaces the form answers, for example from a spec file.
func (w *Wizard) Load(spec types.WebsiteSpec) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.spec = spec
	w.spec.Sections = nil
	for _, s := range spec.Sections {
		if !contains(w.spec.Sections, s) {
			w.spec.Sections = append(w.spec.Sections, s)
		}
	}
}

func (w *Wizard) SetPurpose(v string) { w.update(func(s *types.WebsiteSpec) { s.Purpose = v }) }
func (w *Wizard) SetColorScheme(v string) { w.update(func(s *types.WebsiteSpec) { s.ColorScheme = v }) }
func (w *Wizard) SetFontStyle(v string) { w.update(func(s *types.WebsiteSpec) { s.FontStyle = v }) }
func (w *Wizard) SetLanguage(v string) { w.update(func(s *types.WebsiteSpec) { s.Language = v }) }
func (w *Wizard) SetAdditionalInfo(v string) { w.update(func(s *types.WebsiteSpec) { s.AdditionalInfo = v }) }

func (w *Wizard) update(fn func(*types.WebsiteSpec)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.spec)
}

// ToggleSection adds the section if absent, removes it otherwise, and reports
// whether it is now selected. Selection order is kept.
func (w *Wizard) ToggleSection(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, s := range w.spec.Sections {
		if s == name {
			w.spec.Sections = append(w.spec.Sections[:i:i], w.spec.Sections[i+1:]...)
			return false
		}
	}
	w.spec.Sections = append(w.spec.Sections, name)
	return true
}

// ValidateStep checks the answers required by one step.
func ValidateStep(step int, spec types.WebsiteSpec) error {
	var ok bool
	switch step {
	case 1:
		ok = strings.TrimSpace(spec.Purpose) != ""
	case 2:
		ok = len(spec.Sections) >= MinSections
	case 3:
		ok = spec.ColorScheme != "" && spec.FontStyle != "" && spec.Language != ""
	case 4:
		return nil
	default:
		return fmt.Errorf("%w: unknown step %d", ErrIncompleteStep, step)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrIncompleteStep, stepMessages[step])
	}
	return nil
}

// ValidateSpec is the check applied before a spec may be sent for generation.
func ValidateSpec(spec types.WebsiteSpec) error {
	if strings.TrimSpace(spec.Purpose) == "" {
		return fmt.Errorf("%w: %s", ErrIncompleteStep, stepMessages[1])
	}
	unique := make(map[string]struct{}, len(spec.Sections))
	for _, s := range spec.Sections {
		if strings.TrimSpace(s) != "" {
			unique[s] = struct{}{}
		}
	}
	if len(unique) < MinSections {
		return fmt.Errorf("%w: %s", ErrIncompleteStep, stepMessages[2])
	}
	return nil
}

// Next advances one step if the current step is complete.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := ValidateStep(w.step, w.spec); err != nil {
		return err
	}
	if w.step < LastStep {
		w.step++
	}
	return nil
}

func (w *Wizard) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > FirstStep {
		w.step--
	}
}

// Submitting reports whether a generation is in flight.
func (w *Wizard) Submitting() bool {
	return w.inFlight.Load()
}

// Submit sends the current answers for generation and extracts the returned
// code. Only one submission may run at a time. The form is left untouched so
// a failed submission can be retried.
func (w *Wizard) Submit(ctx context.Context, gen Generator) (types.GeneratedArtifact, error) {
	if !w.inFlight.CompareAndSwap(false, true) {
		return types.GeneratedArtifact{}, ErrInFlight
	}
	defer w.inFlight.Store(false)

	spec := Clean(w.Spec())
	if err := ValidateSpec(spec); err != nil {
		return types.GeneratedArtifact{}, err
	}

	text, err := gen.GenerateWebsiteHTML(ctx, prompts.DescribeWebsite(spec))
	if err != nil {
		log.Printf("ERROR: website generation failed: %v", err)
		return types.GeneratedArtifact{}, fmt.Errorf("failed to generate website: %w", err)
	}

	artifact := extract.Artifact(text)
	if artifact.HTML == "" {
		log.Println("WARN: completion contained no HTML section")
	}
	return artifact, nil
}

var textPolicy = bluemonday.StrictPolicy()

// Clean strips markup from the free-text answers.
func Clean(spec types.WebsiteSpec) types.WebsiteSpec {
	spec.Purpose = scrub(spec.Purpose)
	spec.AdditionalInfo = scrub(spec.AdditionalInfo)
	spec.ColorScheme = scrub(spec.ColorScheme)
	spec.FontStyle = scrub(spec.FontStyle)
	spec.Language = scrub(spec.Language)
	sections := make([]string, 0, len(spec.Sections))
	for _, s := range spec.Sections {
		if s = scrub(s); s != "" && !contains(sections, s) {
			sections = append(sections, s)
		}
	}
	spec.Sections = sections
	return spec
}

// scrub removes tags; the policy escapes entities, so they are decoded again.
func scrub(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
