package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryCategoryHasATypeDefinition(t *testing.T) {
	registered := map[string]bool{}
	for _, def := range TypeDefinitions() {
		assert.False(t, registered[def.TypeName], "duplicate type %s", def.TypeName)
		registered[def.TypeName] = true
	}
	for _, name := range CategoryNames() {
		assert.True(t, registered[name], "category %s has no component type", name)
	}
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory("slider"))
	assert.True(t, IsCategory("hero"))
	assert.False(t, IsCategory("about"))
	assert.False(t, IsCategory("Slider"))
}

func TestKeywordPattern(t *testing.T) {
	slider := Categories[0]
	assert.Equal(t, "slider", slider.Name)
	re := slider.KeywordPattern()
	assert.True(t, re.MatchString("main-CAROUSEL"))
	assert.True(t, re.MatchString("swiper-wrapper"))
	assert.False(t, re.MatchString("gallery"))
}

func TestBlockCatalog(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Blocks() {
		assert.NotEmpty(t, b.Label)
		assert.NotEmpty(t, b.Category)
		assert.NotEmpty(t, b.Markup)
		assert.False(t, seen[b.ID], "duplicate block %s", b.ID)
		seen[b.ID] = true
	}
	assert.Len(t, seen, 11)
}

func TestStyleBundle(t *testing.T) {
	assert.Equal(t, supportStyles, StyleBundle("  "))
	out := StyleBundle("body { margin: 0; }")
	assert.Contains(t, out, "body { margin: 0; }\n\n.custom-slider")
}

func TestTypeDefinitionsAreFreshCopies(t *testing.T) {
	defs := TypeDefinitions()
	defs[0].TypeName = "mutated"
	assert.Equal(t, "slider", TypeDefinitions()[0].TypeName)
}
