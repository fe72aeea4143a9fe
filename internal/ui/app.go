// Package ui provides a Bubble Tea-based TUI for passport.
package ui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/passport/internal/countries"
	"github.com/five82/passport/internal/picker"
	"github.com/five82/passport/internal/prefs"
	"github.com/five82/passport/internal/state"
)

// focusArea identifies which widget receives keys.
type focusArea int

const (
	focusFilter focusArea = iota
	focusGroupSize
	focusList
	focusCount
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Logger    *zap.Logger
	Endpoint  string
	GroupSize int // pre-fills the group size input when positive
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	logger    *zap.Logger
	endpoint  string
	prefsPath string
	pollTick  time.Duration
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	focus    focusArea
	showHelp bool
	spinner  spinner.Model

	// Data state
	snapshot state.Snapshot
	picker   *picker.State

	// Inputs
	filterInput textinput.Model
	groupInput  textinput.Model

	// Filtered list
	cursor     int
	listOffset int

	// Selected groups
	groupsViewport viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		logger:    logger,
		endpoint:  opts.Endpoint,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.initInputs()
	if opts.GroupSize > 0 {
		m.groupInput.SetValue(strconv.Itoa(opts.GroupSize))
	}
	m.groupsViewport = viewport.New(0, 0)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
		textinput.Blink,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, m.updateFocusedInput(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.snapshot.Phase {
	case state.PhaseError:
		return m.renderError()
	case state.PhaseReady:
		if m.picker == nil {
			return m.renderLoading()
		}
	default:
		return m.renderLoading()
	}

	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// applySnapshot records the fetch state. The country list is copied into the
// picker once, the first time the snapshot is Ready.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if snap.Phase != state.PhaseReady || m.picker != nil {
		return
	}
	m.picker = picker.New(snap.Countries)
	m.syncInputs()
	m.logger.Info("picker ready",
		zap.Int("countries", m.picker.Len()),
		zap.Duration("fetch", snap.Elapsed()),
	)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Loading and error screens only know how to quit.
	if m.picker == nil {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	if m.focus != focusList {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

// handleInputKey feeds keys to the focused text input.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm):
		return m, m.setFocus(focusList)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.groupsViewport.HalfPageDown()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.groupsViewport.HalfPageUp()
		return m, nil
	}
	return m, m.updateFocusedInput(msg)
}

// handleListKey processes keys while the filtered list has focus.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.picker.Visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save prefs failed", zap.Error(err))
			}
		}
		m.refreshGroups()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		return m, m.setFocus(focusFilter)

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(visible)-1, 0)

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(visible) {
			m.toggle(visible[m.cursor])
		}

	case key.Matches(msg, m.keys.HalfPageDown):
		m.groupsViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.groupsViewport.HalfPageUp()
	}

	m.scrollListToCursor()
	return m, nil
}

// handleMouse toggles the filtered row under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.picker == nil || m.showHelp {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelDown:
		if m.inGroupsPane(msg.X) {
			m.groupsViewport.ScrollDown(1)
		}
		return m, nil
	case tea.MouseButtonWheelUp:
		if m.inGroupsPane(msg.X) {
			m.groupsViewport.ScrollUp(1)
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	row, ok := m.listRowAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	visible := m.picker.Visible()
	m.cursor = row
	m.toggle(visible[row])
	cmd := m.setFocus(focusList)
	m.scrollListToCursor()
	return m, cmd
}

// toggle flips the selection of c and refreshes the groups pane.
func (m *Model) toggle(c countries.Country) {
	selected := m.picker.Toggle(c)
	m.logger.Debug("toggle",
		zap.String("code", c.Code),
		zap.Bool("selected", selected),
		zap.String("color", m.picker.CurrentColor().Name),
	)
	m.refreshGroups()
}

// setFocus moves keyboard focus and updates input cursors.
func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.filterInput.Blur()
	m.groupInput.Blur()
	switch f {
	case focusFilter:
		return m.filterInput.Focus()
	case focusGroupSize:
		return m.groupInput.Focus()
	}
	return nil
}

// updateFocusedInput forwards msg to the focused text input and re-derives
// the picker views from the input values.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusFilter:
		m.filterInput, cmd = m.filterInput.Update(msg)
	case focusGroupSize:
		m.groupInput, cmd = m.groupInput.Update(msg)
	default:
		return nil
	}
	m.syncInputs()
	return cmd
}

// syncInputs pushes the input values into the picker.
func (m *Model) syncInputs() {
	if m.picker == nil {
		return
	}
	filterChanged := m.picker.FilterText() != m.filterInput.Value()
	m.picker.SetFilter(m.filterInput.Value())
	m.picker.SetGroupSize(strings.TrimSpace(m.groupInput.Value()))

	if filterChanged {
		m.cursor = 0
		m.listOffset = 0
	}
	m.clampCursor()
	m.refreshGroups()
}

// handleTick polls the store until the fetch settles.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ctx.Err() != nil {
		return m, tea.Quit
	}
	if m.store == nil || !m.snapshot.Loading() {
		return m, nil
	}
	return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
