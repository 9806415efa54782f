package wizard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai_site_builder/internal/types"
)

type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeGenerator) GenerateWebsiteHTML(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	return f.reply, f.err
}

func filledWizard() *Wizard {
	w := New()
	w.SetPurpose("Yoga studio")
	for _, s := range []string{"Hero", "Pricing", "Contact"} {
		w.ToggleSection(s)
	}
	w.SetColorScheme("Warm Earth Tones")
	w.SetFontStyle("Classic Serif")
	return w
}

func TestNewDefaults(t *testing.T) {
	w := New()
	assert.Equal(t, FirstStep, w.Step())
	assert.Equal(t, "English", w.Spec().Language)
	assert.False(t, w.Submitting())
}

func TestToggleSectionKeepsOrder(t *testing.T) {
	w := New()
	assert.True(t, w.ToggleSection("Hero"))
	assert.True(t, w.ToggleSection("About"))
	assert.True(t, w.ToggleSection("FAQ"))
	assert.False(t, w.ToggleSection("About"))
	assert.True(t, w.ToggleSection("About"))

	assert.Equal(t, []string{"Hero", "FAQ", "About"}, w.Spec().Sections)
}

func TestSpecReturnsCopy(t *testing.T) {
	w := filledWizard()
	spec := w.Spec()
	spec.Sections[0] = "Changed"
	assert.Equal(t, "Hero", w.Spec().Sections[0])
}

func TestNextValidatesEachStep(t *testing.T) {
	w := New()

	err := w.Next()
	require.ErrorIs(t, err, ErrIncompleteStep)
	assert.Contains(t, err.Error(), "Please enter your website purpose to continue.")
	assert.Equal(t, 1, w.Step())

	w.SetPurpose("Bakery")
	require.NoError(t, w.Next())

	w.ToggleSection("Hero")
	w.ToggleSection("About")
	err = w.Next()
	assert.ErrorContains(t, err, "Please select at least 3 sections to continue.")
	w.ToggleSection("Contact")
	require.NoError(t, w.Next())

	w.SetLanguage("")
	err = w.Next()
	assert.ErrorContains(t, err, "Please select color scheme, font style, and language to continue.")
	w.SetColorScheme("Tech Dark Theme")
	w.SetFontStyle("Bold Display")
	w.SetLanguage("German")
	require.NoError(t, w.Next())
	assert.Equal(t, LastStep, w.Step())

	require.NoError(t, w.Next(), "the last step is always complete")
	assert.Equal(t, LastStep, w.Step())

	w.Prev()
	w.Prev()
	w.Prev()
	w.Prev()
	assert.Equal(t, FirstStep, w.Step())
}

func TestValidateStepUnknown(t *testing.T) {
	assert.ErrorIs(t, ValidateStep(7, types.WebsiteSpec{}), ErrIncompleteStep)
}

func TestValidateSpec(t *testing.T) {
	tests := []struct {
		name string
		spec types.WebsiteSpec
		ok   bool
	}{
		{"empty", types.WebsiteSpec{}, false},
		{"blank purpose", types.WebsiteSpec{Purpose: "  ", Sections: []string{"a", "b", "c"}}, false},
		{"too few sections", types.WebsiteSpec{Purpose: "x", Sections: []string{"a", "b"}}, false},
		{"duplicates do not count", types.WebsiteSpec{Purpose: "x", Sections: []string{"a", "a", "b"}}, false},
		{"valid", types.WebsiteSpec{Purpose: "x", Sections: []string{"a", "b", "c"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpec(tt.spec)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrIncompleteStep)
			}
		})
	}
}

func TestSubmit(t *testing.T) {
	gen := &fakeGenerator{reply: "HTML:\n```html\n<div class=\"hero\">Hi</div>\n```\nCSS:\n```css\nbody{}\n```"}
	w := filledWizard()

	artifact, err := w.Submit(context.Background(), gen)
	require.NoError(t, err)
	assert.Equal(t, `<div class="hero">Hi</div>`, artifact.HTML)
	assert.Equal(t, "body{}", artifact.CSS)
	assert.Empty(t, artifact.JS)

	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.HasPrefix(gen.prompts[0], "Website Purpose: Yoga studio"))
	assert.Contains(t, gen.prompts[0], "- Hero\n- Pricing\n- Contact\n")
	assert.False(t, w.Submitting())
}

func TestSubmitRejectsIncompleteForm(t *testing.T) {
	gen := &fakeGenerator{}
	w := New()
	w.SetPurpose("x")
	w.ToggleSection("Hero")

	_, err := w.Submit(context.Background(), gen)
	assert.ErrorIs(t, err, ErrIncompleteStep)
	assert.Empty(t, gen.prompts)
}

func TestSubmitFailureKeepsForm(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("status 500")}
	w := filledWizard()
	before := w.Spec()

	_, err := w.Submit(context.Background(), gen)
	assert.Error(t, err)
	assert.Equal(t, before, w.Spec())
	assert.False(t, w.Submitting(), "a failed submission re-enables the form")
}

func TestSubmitWhileInFlight(t *testing.T) {
	gen := &fakeGenerator{
		reply:   "HTML:\n```html\n<p>x</p>\n```",
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	w := filledWizard()

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background(), gen)
		done <- err
	}()
	<-gen.started

	assert.True(t, w.Submitting())
	_, err := w.Submit(context.Background(), &fakeGenerator{})
	assert.ErrorIs(t, err, ErrInFlight)

	close(gen.block)
	assert.NoError(t, <-done)
	assert.Len(t, gen.prompts, 1)
}

func TestClean(t *testing.T) {
	spec := Clean(types.WebsiteSpec{
		Purpose:        `<script>alert(1)</script>Tom & Jerry <b>fan</b> site`,
		Sections:       []string{"Hero", "<i>Hero</i>", " ", "About"},
		AdditionalInfo: `<a href="javascript:x">click</a>`,
		Language:       "French",
	})

	assert.Equal(t, "Tom & Jerry fan site", spec.Purpose)
	assert.Equal(t, []string{"Hero", "About"}, spec.Sections)
	assert.Equal(t, "click", spec.AdditionalInfo)
	assert.Equal(t, "French", spec.Language)
}

func TestLoadDropsDuplicateSections(t *testing.T) {
	w := New()
	w.Load(types.WebsiteSpec{Purpose: "x", Sections: []string{"Hero", "Hero", "FAQ"}})
	assert.Equal(t, []string{"Hero", "FAQ"}, w.Spec().Sections)
}
