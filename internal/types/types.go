package types

// WebsiteSpec is what the user filled in across the wizard steps.
type WebsiteSpec struct {
	Purpose        string   `json:"purpose" yaml:"purpose"`
	Sections       []string `json:"sections" yaml:"sections"`
	ColorScheme    string   `json:"colorScheme" yaml:"colorScheme"`
	FontStyle      string   `json:"fontStyle" yaml:"fontStyle"`
	Language       string   `json:"language" yaml:"language"`
	AdditionalInfo string   `json:"additionalInfo" yaml:"additionalInfo"`
}

// GeneratedArtifact holds the code pulled out of a completion.
// Fields are never nil; a missing section is an empty string.
type GeneratedArtifact struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

// IsEmpty reports whether nothing usable was extracted.
func (a GeneratedArtifact) IsEmpty() bool {
	return a.HTML == "" && a.CSS == "" && a.JS == ""
}

// GeneratedFile represents one artifact section written to disk.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "HTML", "CSS", "JavaScript"
	Content  string `json:"content"`
}

// Trait is an editable property exposed by the editor's trait panel.
type Trait struct {
	Name    string        `json:"name"`
	Kind    string        `json:"type"` // checkbox, number, text, select
	Default any           `json:"value,omitempty"`
	Options []TraitOption `json:"options,omitempty"`
}

type TraitOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ComponentTypeDefinition describes a custom component type registered with the editor.
type ComponentTypeDefinition struct {
	TypeName          string            `json:"typeName"`
	DefaultTag        string            `json:"tagName"`
	DefaultClasses    []string          `json:"classes"`
	DefaultAttributes map[string]string `json:"attributes"`
	Droppable         bool              `json:"droppable"`
	Editable          bool              `json:"editable"`
	Traits            []Trait           `json:"traits,omitempty"`
	Placeholder       string            `json:"placeholder,omitempty"` // initial text content for section types
}

// BlockDefinition is a palette entry.
type BlockDefinition struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Class    string `json:"class,omitempty"`
	Markup   string `json:"content"`
}
