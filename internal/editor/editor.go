package editor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"ai_site_builder/internal/components"
	"ai_site_builder/internal/export"
	"ai_site_builder/internal/normalize"
	"ai_site_builder/internal/types"
)

// PlaceholderDocument is loaded when generated content is missing or cannot be loaded.
const PlaceholderDocument = `<div data-gjs-editable="true" data-gjs-droppable="true">Nothing to show yet. Drag blocks here to start building your page.</div>`

const defaultSettleDelay = 100 * time.Millisecond

// readyTimeout bounds the wait for a runtime's ready signal.
var readyTimeout = 5 * time.Second

// Handle owns at most one live runtime. The zero value is ready to use.
type Handle struct {
	mu      sync.Mutex
	rt      Runtime
	preview bool
	device  string
}

// Active reports whether a runtime is currently bound to the handle.
func (h *Handle) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rt != nil
}

// Options configures Bootstrap.
type Options struct {
	Factory      Factory
	Mounts       Mounts
	Artifact     types.GeneratedArtifact
	SettleDelay  time.Duration // used only when the runtime has no ready signal
	HistoryLimit int           // undo depth; zero uses DefaultHistoryLimit
}

// Bootstrap starts a runtime on h and loads the artifact into it.
// It fails with ErrAlreadyBootstrapped if h already holds a runtime; call
// Dispose first to start over.
func Bootstrap(ctx context.Context, h *Handle, opts Options) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rt != nil {
		return ErrAlreadyBootstrapped
	}
	if opts.Mounts.Canvas == "" {
		return ErrNoCanvas
	}
	if opts.Factory == nil {
		opts.Factory = HeadlessFactory
	}

	rt, err := opts.Factory(RuntimeConfig{
		Mounts:           opts.Mounts,
		AutoRenderPanels: false,
		Devices:          Devices,
		HistoryLimit:     opts.HistoryLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize editor: %w", err)
	}
	h.rt = rt
	h.preview = false
	h.device = Devices[0].Name

	for _, def := range components.TypeDefinitions() {
		if err := rt.AddComponentType(def); err != nil {
			log.Printf("WARN: failed to register component type %s: %v", def.TypeName, err)
		}
	}

	rt.ResetBlocks()
	for _, block := range components.Blocks() {
		if err := rt.AddBlock(block); err != nil {
			log.Printf("WARN: failed to register block %s: %v", block.ID, err)
		}
	}

	if loadContent(rt, opts.Artifact) {
		if err := settle(ctx, rt, opts.SettleDelay); err != nil {
			_ = h.disposeLocked()
			return err
		}
	} else {
		log.Println("WARN: editor holds no document, rendering panels without waiting.")
	}

	renderPanels(rt, opts.Mounts)
	return nil
}

// loadContent never fails: any error or panic falls back to the placeholder.
// It reports whether the runtime holds a document afterwards.
func loadContent(rt Runtime, a types.GeneratedArtifact) (loaded bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("WARN: editor panicked while loading content: %v", r)
			loaded = loadPlaceholder(rt, a.CSS)
		}
	}()

	if strings.TrimSpace(a.HTML) == "" {
		log.Println("No generated HTML to load, using placeholder document.")
		return loadPlaceholder(rt, a.CSS)
	}

	document := normalize.Normalize(a.HTML) + wrapScript(a.JS)
	err := rt.SetComponents(document)
	if err == nil {
		err = rt.SetStyle(components.StyleBundle(a.CSS))
	}
	if err != nil {
		log.Printf("WARN: error setting components: %v", err)
		return loadPlaceholder(rt, a.CSS)
	}
	return true
}

func loadPlaceholder(rt Runtime, css string) bool {
	if err := rt.SetComponents(PlaceholderDocument); err != nil {
		log.Printf("ERROR: failed to load placeholder document: %v", err)
		return false
	}
	if err := rt.SetStyle(components.StyleBundle(css)); err != nil {
		log.Printf("WARN: failed to load styles: %v", err)
	}
	return true
}

// wrapScript isolates generated JS in its own function scope.
func wrapScript(js string) string {
	if strings.TrimSpace(js) == "" {
		return ""
	}
	js = strings.ReplaceAll(js, "</script", `<\/script`)
	return "\n<script>\n(() => {\n" + js + "\n})();\n</script>"
}

func settle(ctx context.Context, rt Runtime, delay time.Duration) error {
	if rn, ok := rt.(ReadyNotifier); ok {
		timer := time.NewTimer(readyTimeout)
		defer timer.Stop()
		select {
		case <-rn.Ready():
			return nil
		case <-timer.C:
			log.Printf("WARN: editor not ready after %s, continuing.", readyTimeout)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if delay <= 0 {
		delay = defaultSettleDelay
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func renderPanels(rt Runtime, m Mounts) {
	if m.Blocks != "" {
		safeRender(rt, PanelBlocks)
	}
	if m.Layers != "" && rt.ComponentCount() > 0 {
		safeRender(rt, PanelLayers)
	}
	if m.Styles != "" {
		safeRender(rt, PanelStyles)
	}
}

// safeRender keeps one panel's failure from affecting the others.
func safeRender(rt Runtime, p Panel) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("WARN: %s panel render panicked: %v", p, r)
		}
	}()
	if err := rt.RenderPanel(p); err != nil {
		log.Printf("WARN: %s panel render error: %v", p, err)
	}
}

// Dispose destroys the runtime bound to h and clears it so a later
// Bootstrap creates a fresh instance. Disposing an empty handle is a no-op.
func Dispose(h *Handle) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposeLocked()
}

func (h *Handle) disposeLocked() (err error) {
	if h.rt == nil {
		return nil
	}
	rt := h.rt
	h.rt = nil
	h.preview = false
	h.device = ""

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error destroying editor: %v", r)
			log.Printf("WARN: %v", err)
		}
	}()
	if err = rt.Destroy(); err != nil {
		log.Printf("WARN: error destroying editor: %v", err)
	}
	return err
}

func (h *Handle) runtime() (Runtime, error) {
	if h.rt == nil {
		return nil, ErrNotBootstrapped
	}
	return h.rt, nil
}

// TogglePreview flips preview mode and returns the new state.
func (h *Handle) TogglePreview() (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rt, err := h.runtime()
	if err != nil {
		return false, err
	}
	if h.preview {
		err = rt.StopCommand(CommandPreview)
	} else {
		err = rt.RunCommand(CommandPreview)
	}
	if err != nil {
		return h.preview, err
	}
	h.preview = !h.preview
	return h.preview, nil
}

func (h *Handle) Undo() error { return h.run(CommandUndo) }

func (h *Handle) Redo() error { return h.run(CommandRedo) }

func (h *Handle) run(command string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	rt, err := h.runtime()
	if err != nil {
		return err
	}
	return rt.RunCommand(command)
}

// SetDevice switches the canvas to one of the registered devices.
func (h *Handle) SetDevice(name string) error {
	if _, ok := LookupDevice(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDevice, name)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	rt, err := h.runtime()
	if err != nil {
		return err
	}
	if err := rt.SetDevice(name); err != nil {
		return err
	}
	h.device = name
	return nil
}

// UpdateComponents replaces the live document, as an edit in the canvas would.
func (h *Handle) UpdateComponents(html string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	rt, err := h.runtime()
	if err != nil {
		return err
	}
	return rt.SetComponents(html)
}

// State is a snapshot of the live editor.
type State struct {
	HTML    string `json:"html"`
	CSS     string `json:"css"`
	Device  string `json:"device"`
	Preview bool   `json:"preview"`
}

func (h *Handle) State() (State, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rt, err := h.runtime()
	if err != nil {
		return State{}, err
	}
	return State{HTML: rt.HTML(), CSS: rt.CSS(), Device: h.device, Preview: h.preview}, nil
}

// Export renders the live document as a standalone HTML page.
func (h *Handle) Export() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rt, err := h.runtime()
	if err != nil {
		return "", err
	}
	return export.Document(rt), nil
}
