// Package editor drives an external visual page-editor runtime: it boots a
// single instance per Handle, loads normalized content into it and exposes
// the preview, history, device and export operations.
package editor

import (
	"errors"

	"ai_site_builder/internal/types"
)

// Device is an entry in the runtime's device registry.
type Device struct {
	Name       string `json:"name"`
	Width      string `json:"width"`      // empty means unbounded
	WidthMedia string `json:"widthMedia"` // media-query breakpoint used for styles
}

// Devices is the fixed registry every runtime is started with.
var Devices = []Device{
	{Name: "Desktop"},
	{Name: "Tablet", Width: "768px", WidthMedia: "992px"},
	{Name: "Mobile", Width: "320px", WidthMedia: "768px"},
}

// LookupDevice finds a registered device by name.
func LookupDevice(name string) (Device, bool) {
	for _, d := range Devices {
		if d.Name == name {
			return d, true
		}
	}
	return Device{}, false
}

type Panel string

const (
	PanelBlocks Panel = "blocks"
	PanelLayers Panel = "layers"
	PanelStyles Panel = "styles"
)

// Commands understood by every runtime.
const (
	CommandPreview = "preview"
	CommandUndo    = "core:undo"
	CommandRedo    = "core:redo"
)

// Mounts names the targets the runtime renders into.
type Mounts struct {
	Canvas string `json:"canvas"`
	Blocks string `json:"blocks"`
	Layers string `json:"layers"`
	Styles string `json:"styles"`
}

func (m Mounts) target(p Panel) string {
	switch p {
	case PanelBlocks:
		return m.Blocks
	case PanelLayers:
		return m.Layers
	case PanelStyles:
		return m.Styles
	}
	return ""
}

// RuntimeConfig is passed to a Factory when an instance is created.
type RuntimeConfig struct {
	Mounts           Mounts
	AutoRenderPanels bool
	Devices          []Device
	HistoryLimit     int
}

// DefaultHistoryLimit is the undo depth used when none is configured.
const DefaultHistoryLimit = 50

// Runtime is the contract of the external editor library.
type Runtime interface {
	AddComponentType(def types.ComponentTypeDefinition) error
	ResetBlocks()
	AddBlock(def types.BlockDefinition) error
	SetComponents(html string) error
	SetStyle(css string) error
	ComponentCount() int
	RenderPanel(p Panel) error
	RunCommand(name string) error
	StopCommand(name string) error
	SetDevice(name string) error
	HTML() string
	CSS() string
	Destroy() error
}

// ReadyNotifier is implemented by runtimes that signal when their layout has
// settled after content was loaded. Bootstrap prefers it over a fixed delay.
type ReadyNotifier interface {
	Ready() <-chan struct{}
}

// Factory creates a runtime instance.
type Factory func(cfg RuntimeConfig) (Runtime, error)

var (
	ErrAlreadyBootstrapped = errors.New("editor already bootstrapped")
	ErrNotBootstrapped     = errors.New("editor not bootstrapped")
	ErrNoCanvas            = errors.New("editor canvas mount is required")
	ErrUnknownDevice       = errors.New("unknown device")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrDestroyed           = errors.New("editor runtime destroyed")
)
