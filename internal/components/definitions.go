package components

import "ai_site_builder/internal/types"

func interactive(name string, droppable bool, traits ...types.Trait) types.ComponentTypeDefinition {
	return types.ComponentTypeDefinition{
		TypeName:          name,
		DefaultTag:        "div",
		DefaultClasses:    []string{"custom-" + name},
		DefaultAttributes: map[string]string{"data-component": name},
		Droppable:         droppable,
		Editable:          true,
		Traits:            traits,
	}
}

func section(name, tag, placeholder string) types.ComponentTypeDefinition {
	return types.ComponentTypeDefinition{
		TypeName:          name,
		DefaultTag:        tag,
		DefaultClasses:    []string{"custom-" + name},
		DefaultAttributes: map[string]string{"data-component": name},
		Droppable:         true,
		Placeholder:       placeholder,
	}
}

// TypeDefinitions returns the custom component types in registration order.
// A fresh slice is returned each call so callers cannot mutate the table.
func TypeDefinitions() []types.ComponentTypeDefinition {
	return []types.ComponentTypeDefinition{
		interactive("slider", true,
			types.Trait{Name: "autoplay", Kind: "checkbox", Default: false},
			types.Trait{Name: "duration", Kind: "number", Default: 3000},
			types.Trait{Name: "arrows", Kind: "checkbox", Default: true},
			types.Trait{Name: "dots", Kind: "checkbox", Default: true},
		),
		interactive("accordion", true,
			types.Trait{Name: "multiple", Kind: "checkbox", Default: false},
			types.Trait{Name: "collapsible", Kind: "checkbox", Default: true},
		),
		interactive("countdown", false,
			types.Trait{Name: "target-date", Kind: "text", Default: "2024-12-31"},
			types.Trait{Name: "format", Kind: "select", Options: []types.TraitOption{
				{ID: "days", Name: "Days"},
				{ID: "hours", Name: "Hours"},
				{ID: "minutes", Name: "Minutes"},
				{ID: "seconds", Name: "Seconds"},
			}},
		),
		interactive("testimonial", true,
			types.Trait{Name: "author", Kind: "text", Default: "John Doe"},
			types.Trait{Name: "position", Kind: "text", Default: "CEO"},
			types.Trait{Name: "company", Kind: "text", Default: "Company Inc."},
		),
		interactive("pricing", true,
			types.Trait{Name: "price", Kind: "text", Default: "$99"},
			types.Trait{Name: "period", Kind: "text", Default: "month"},
			types.Trait{Name: "featured", Kind: "checkbox", Default: false},
		),
		interactive("gallery", true,
			types.Trait{Name: "columns", Kind: "number", Default: 3},
			types.Trait{Name: "lightbox", Kind: "checkbox", Default: true},
			types.Trait{Name: "spacing", Kind: "number", Default: 10},
		),
		interactive("tabs", true,
			types.Trait{Name: "active-tab", Kind: "number", Default: 0},
		),
		interactive("modal", true,
			types.Trait{Name: "open-on-load", Kind: "checkbox", Default: false},
		),
		interactive("form", true,
			types.Trait{Name: "action", Kind: "text", Default: "#"},
			types.Trait{Name: "method", Kind: "select", Options: []types.TraitOption{
				{ID: "post", Name: "POST"},
				{ID: "get", Name: "GET"},
			}},
		),
		interactive("navbar", true,
			types.Trait{Name: "sticky", Kind: "checkbox", Default: false},
		),
		section("hero", "section", "Hero Section"),
		section("about", "section", "About Us"),
		section("services", "section", "Our Services"),
		section("portfolio", "section", "Portfolio Section"),
		section("faq", "section", "Frequently Asked Questions"),
		section("team", "section", "Our Team"),
		section("contact", "section", "Contact Us"),
		section("blog", "section", "Latest Blog Posts"),
		section("features", "section", "Key Features"),
		section("footer", "footer", "Footer Content"),
	}
}
