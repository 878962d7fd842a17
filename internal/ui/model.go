package ui

import (
	"reflect"

	"github.com/atomicstack/focus-tree/internal/focus"
	"github.com/atomicstack/focus-tree/internal/layout"
	"github.com/atomicstack/focus-tree/internal/theme"
	"github.com/atomicstack/focus-tree/internal/ui/command"
	uistate "github.com/atomicstack/focus-tree/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModePalette
)

const (
	defaultWidth     = 80
	pathSeparator    = " › "
	paletteMaxHeight = 10
	startupLabel     = "startup"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width         int
	Height        int
	ShowFooter    bool
	ShowInspector bool
	Layout        layout.Layout
}

// Model implements the Bubble Tea model for the focus tree demo.
type Model struct {
	layout  layout.Layout
	manager *focus.Manager
	bus     *command.Bus
	state   focus.State

	regions  map[focus.ID]layout.Region
	removing map[focus.ID]struct{}
	rootID   focus.ID
	nextSeq  map[string]int

	mode    Mode
	palette *uistate.Palette

	keys        browseKeys
	paletteKeys paletteKeys
	help        help.Model

	width         int
	height        int
	fixedWidth    bool
	fixedHeight   bool
	showFooter    bool
	showInspector bool
	errMsg        string
	infoMsg       string

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model and the regions of opts.Layout. Nothing is
// registered until Init runs.
func NewModel(opts Options) *Model {
	manager := focus.NewManager(layout.Ancestry)
	m := &Model{
		layout:        opts.Layout,
		manager:       manager,
		bus:           command.New(manager),
		regions:       map[focus.ID]layout.Region{},
		removing:      map[focus.ID]struct{}{},
		nextSeq:       map[string]int{},
		keys:          newBrowseKeys(opts.Layout),
		paletteKeys:   newPaletteKeys(),
		help:          help.New(),
		showFooter:    opts.ShowFooter,
		showInspector: opts.ShowInspector,
	}
	for _, list := range opts.Layout.Lists {
		m.nextSeq[list.Key] = len(list.Items) + 1
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init registers every region of the layout, innermost first, and focuses
// the first focusable one.
func (m *Model) Init() tea.Cmd {
	regions := m.layout.Regions()
	cmds := make([]focus.Command, 0, len(regions)+1)
	for _, r := range regions {
		m.regions[r.ID] = r
		if r.Path == layout.RootPath {
			m.rootID = r.ID
		}
		cmds = append(cmds, r.Command())
	}
	cmds = append(cmds, focus.FocusNext(""))
	return m.bus.Execute(command.Request{Label: startupLabel, Commands: cmds})
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(command.AppliedMsg{}): m.handleAppliedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			v := reflect.ValueOf(msg)
			if v.IsNil() {
				return nil
			}
			return func(tea.Msg) tea.Cmd { return handler(v.Elem().Interface()) }
		}
	}
	return nil
}

// State returns the last focus state the model rendered.
func (m *Model) State() focus.State {
	return m.state
}

// Region returns the layout region registered under id.
func (m *Model) Region(id focus.ID) (layout.Region, bool) {
	r, ok := m.regions[id]
	return r, ok
}

// Mode reports whether the palette is open.
func (m *Model) Mode() Mode {
	return m.mode
}

func (m *Model) label(id focus.ID) string {
	if r, ok := m.regions[id]; ok {
		return r.Label
	}
	return string(id)
}

// focusedList returns the list region on the active path.
func (m *Model) focusedList() focus.ID {
	for _, id := range m.manager.ActivePath() {
		if r, ok := m.regions[id]; ok && r.Path.Parent() == layout.RootPath {
			return id
		}
	}
	return ""
}

// listID returns the list region registered for key.
func (m *Model) listID(key string) focus.ID {
	want := layout.RootPath.Child(key)
	for id, r := range m.regions {
		if r.Path == want {
			return id
		}
	}
	return ""
}
