package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nebula-linux/nebula-keybind-menu/internal/keybind"
	"github.com/nebula-linux/nebula-keybind-menu/internal/state"
)

// ErrNotTerminal is returned by Run when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Options configures the UI.
type Options struct {
	Entries   []keybind.Entry
	ThemeName string

	// Width and Height seed the layout until the first resize event.
	// Zero values are replaced by the measured or fallback terminal size.
	Width  int
	Height int

	// Input and Output default to os.Stdin and os.Stdout.
	Input  *os.File
	Output *os.File

	// OnReady runs once both ends are confirmed to be terminals, just before
	// the program takes over the screen.
	OnReady func()
	// OnFirstFrame runs once, when the first frame has been rendered.
	OnFirstFrame func()
}

// Model is the root application state for Bubble Tea.
type Model struct {
	menu   state.Menu
	input  textinput.Model
	help   help.Model
	keys   keyMap
	theme  Theme
	styles Styles

	width  int
	height int

	quitting     bool
	firstFrame   *sync.Once
	onFirstFrame func()
}

// New creates a new Bubble Tea model showing every entry.
func New(opts Options) Model {
	input := textinput.New()
	input.Prompt = " "
	input.Placeholder = placeholderText
	input.Focus()

	m := Model{
		menu:         state.NewMenu(opts.Entries),
		input:        input,
		keys:         DefaultKeyMap(),
		firstFrame:   &sync.Once{},
		onFirstFrame: opts.OnFirstFrame,
	}
	m.applyTheme(GetTheme(opts.ThemeName))
	m.setSize(opts.Width, opts.Height)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.menu.SetQuery(m.input.Value()) {
		m.scroll()
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.onFirstFrame != nil {
		m.firstFrame.Do(m.onFirstFrame)
	}
	return m.renderMain()
}

// handleKey processes navigation and quit keys. Keys it does not handle are
// edits to the query.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.menu.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.menu.Move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.menu.Move(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.menu.Move(m.pageSize())
	case key.Matches(msg, m.keys.Top):
		m.menu.Top()
	case key.Matches(msg, m.keys.Bottom):
		m.menu.Bottom()

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		return true, nil

	default:
		return false, nil
	}

	m.scroll()
	return true, nil
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.input.Value()
}

// Menu returns the current menu state.
func (m Model) Menu() state.Menu {
	return m.menu
}

// ThemeName returns the active theme.
func (m Model) ThemeName() string {
	return m.theme.Name
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	m.styles = t.Styles()
	m.input.TextStyle = m.styles.InputText
	m.input.PromptStyle = m.styles.InputText
	m.input.PlaceholderStyle = m.styles.Placeholder
	m.input.Cursor.Style = m.styles.Cursor
	width := m.help.Width
	m.help = newHelp(m.styles)
	m.help.Width = width
}

func (m *Model) setSize(width, height int) {
	m.width, m.height = normalizeSize(width, height)
	// border, prompt, cursor cell and one spare column
	m.input.Width = max(1, m.width-2-len(m.input.Prompt)-2)
	m.help.Width = m.width
	m.scroll()
}

func (m *Model) scroll() {
	m.menu.Scroll(blockHeights(m.menu.View()), contentHeight(m.height))
}

func (m Model) pageSize() int {
	return m.menu.PageSize(blockHeights(m.menu.View()), contentHeight(m.height))
}

// Run starts the Bubble Tea program on the terminal and blocks until the user
// quits or ctx is cancelled. The terminal is restored before Run returns.
func Run(ctx context.Context, opts Options) error {
	in, out := opts.Input, opts.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if !isTerminal(in) || !isTerminal(out) {
		return ErrNotTerminal
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = terminalSize(out)
	}
	if opts.OnReady != nil {
		opts.OnReady()
	}

	// Signals reach the program only through ctx. A second handler inside
	// Bubble Tea can block on its message send after ctx has stopped the
	// loop, and shutdown then waits on it forever.
	p := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	return exitError(ctx, err)
}

// exitError maps the error of a finished program to the error Run reports.
// An interrupt or a cancelled context is a normal way to close the menu.
func exitError(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramPanic):
		return fmt.Errorf("run menu: %w", err)
	case errors.Is(err, tea.ErrInterrupted):
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	}
	return fmt.Errorf("run menu: %w", err)
}
