package editor

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"ai_site_builder/internal/types"
)

// Headless is an in-process Runtime that keeps the document as parsed markup.
// It stands in for the browser editor on the server and in tests.
type Headless struct {
	mu        sync.Mutex
	cfg       RuntimeConfig
	compTypes map[string]types.ComponentTypeDefinition
	blocks    []types.BlockDefinition
	history   []string
	cursor    int
	style     string
	device    string
	active    map[string]bool
	rendered  map[Panel]int
	destroyed bool

	readyOnce sync.Once
	ready     chan struct{}
}

// HeadlessFactory creates Headless runtimes.
func HeadlessFactory(cfg RuntimeConfig) (Runtime, error) {
	return NewHeadless(cfg)
}

func NewHeadless(cfg RuntimeConfig) (*Headless, error) {
	if cfg.Mounts.Canvas == "" {
		return nil, ErrNoCanvas
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	device := ""
	if len(cfg.Devices) > 0 {
		device = cfg.Devices[0].Name
	}
	return &Headless{
		cfg:       cfg,
		compTypes: make(map[string]types.ComponentTypeDefinition),
		cursor:    -1,
		device:    device,
		active:    make(map[string]bool),
		rendered:  make(map[Panel]int),
		ready:     make(chan struct{}),
	}, nil
}

// Ready is closed once the first document has been loaded.
func (e *Headless) Ready() <-chan struct{} {
	return e.ready
}

func (e *Headless) AddComponentType(def types.ComponentTypeDefinition) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	if def.TypeName == "" {
		return errors.New("component type name is required")
	}
	e.compTypes[def.TypeName] = def
	return nil
}

// HasType reports whether a component type is registered.
func (e *Headless) HasType(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.compTypes[name]
	return ok
}

func (e *Headless) ResetBlocks() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.blocks = nil
}

func (e *Headless) AddBlock(def types.BlockDefinition) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	for _, b := range e.blocks {
		if b.ID == def.ID {
			return fmt.Errorf("block %q already registered", def.ID)
		}
	}
	e.blocks = append(e.blocks, def)
	return nil
}

// BlockIDs lists the palette in registration order.
func (e *Headless) BlockIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, len(e.blocks))
	for i, b := range e.blocks {
		ids[i] = b.ID
	}
	return ids
}

// SetComponents parses markup into the document and records it in history.
// Anything after the current history position is discarded, and the oldest
// entries are dropped beyond the history limit. Repeated attributes keep
// their first value, as in a browser DOM.
func (e *Headless) SetComponents(markup string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}

	nodes, err := parseFragment(markup)
	if err != nil {
		return fmt.Errorf("failed to parse components: %w", err)
	}
	var sb strings.Builder
	for _, n := range nodes {
		dropDuplicateAttrs(n)
		if err := html.Render(&sb, n); err != nil {
			return fmt.Errorf("failed to render components: %w", err)
		}
	}

	e.history = append(e.history[:e.cursor+1], sb.String())
	if n := len(e.history); n > e.cfg.HistoryLimit {
		e.history = append([]string(nil), e.history[n-e.cfg.HistoryLimit:]...)
	}
	e.cursor = len(e.history) - 1
	e.readyOnce.Do(func() { close(e.ready) })
	return nil
}

func (e *Headless) SetStyle(css string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	e.style = css
	return nil
}

// ComponentCount counts top-level components: elements and non-blank text.
func (e *Headless) ComponentCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	nodes, err := parseFragment(e.current())
	if err != nil {
		return 0
	}
	count := 0
	for _, n := range nodes {
		switch n.Type {
		case html.ElementNode:
			count++
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				count++
			}
		}
	}
	return count
}

func (e *Headless) RenderPanel(p Panel) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	if e.cfg.Mounts.target(p) == "" {
		return fmt.Errorf("%s panel has no mount target", p)
	}
	e.rendered[p]++
	return nil
}

// Rendered returns how many times a panel has been rendered.
func (e *Headless) Rendered(p Panel) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rendered[p]
}

func (e *Headless) RunCommand(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	switch name {
	case CommandUndo:
		if e.cursor > 0 {
			e.cursor--
		}
	case CommandRedo:
		if e.cursor < len(e.history)-1 {
			e.cursor++
		}
	case CommandPreview:
		e.active[name] = true
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return nil
}

func (e *Headless) StopCommand(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	if name != CommandPreview {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	e.active[name] = false
	return nil
}

// CommandActive reports whether a long-running command such as preview is on.
func (e *Headless) CommandActive(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active[name]
}

func (e *Headless) SetDevice(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	for _, d := range e.cfg.Devices {
		if d.Name == name {
			e.device = name
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDevice, name)
}

func (e *Headless) Device() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.device
}

func (e *Headless) HTML() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current()
}

func (e *Headless) CSS() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.style
}

func (e *Headless) Destroy() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	e.destroyed = true
	e.history = nil
	e.cursor = -1
	return nil
}

func (e *Headless) current() string {
	if e.cursor < 0 {
		return ""
	}
	return e.history[e.cursor]
}

func parseFragment(markup string) ([]*html.Node, error) {
	return html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
}

func dropDuplicateAttrs(n *html.Node) {
	if n.Type == html.ElementNode && len(n.Attr) > 1 {
		seen := make(map[string]struct{}, len(n.Attr))
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			key := a.Namespace + ":" + a.Key
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, a)
		}
		n.Attr = kept
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dropDuplicateAttrs(c)
	}
}
