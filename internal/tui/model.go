package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mcdonaldj/filecheck/internal/adapters/osfs"
	"github.com/mcdonaldj/filecheck/internal/adapters/tuisvc"
	"github.com/mcdonaldj/filecheck/internal/config"
	"github.com/mcdonaldj/filecheck/internal/ports"
)

// View represents the current view state
type View int

const (
	PathsView View = iota
	DetailView
)

// PathItem represents a configured path in the list
type PathItem struct {
	Path    string
	Checked bool
	Result  ports.TUICheckResult
}

// Model is the main TUI model
type Model struct {
	config   *config.Config
	service  ports.TUIService
	view     View
	width    int
	height   int
	quitting bool

	items  []PathItem
	cursor int

	// Status message
	statusMsg string
	statusErr bool
}

// Key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Check    key.Binding
	CheckAll key.Binding
	Create   key.Binding
	Detail   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Check: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "check"),
	),
	CheckAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "check all"),
	),
	Create: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "create if absent"),
	),
	Detail: key.NewBinding(
		key.WithKeys("d", "right", "l"),
		key.WithHelp("d", "details"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace", "left", "h"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type checkMsg struct {
	index  int
	result ports.TUICheckResult
}

type checkAllMsg struct {
	results []ports.TUICheckResult
}

type createMsg struct {
	index  int
	result ports.TUICreateResult
}

// NewModelWithService creates a model, loading config through svc
func NewModelWithService(svc ports.TUIService) (*Model, error) {
	cfg, err := svc.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return NewModelWithConfig(cfg, svc), nil
}

// NewModelWithConfig creates a model listing every path in cfg
func NewModelWithConfig(cfg *config.Config, svc ports.TUIService) *Model {
	m := &Model{
		config:  cfg,
		service: svc,
		view:    PathsView,
	}
	for _, p := range cfg.Paths() {
		m.items = append(m.items, PathItem{Path: p})
	}
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case checkMsg:
		m.applyCheck(msg.index, msg.result)
		m.statusMsg, m.statusErr = describeCheck(msg.result)
		return m, nil

	case checkAllMsg:
		failed := 0
		for i, r := range msg.results {
			m.applyCheck(i, r)
			if r.Error != nil {
				failed++
			}
		}
		if failed > 0 {
			m.statusMsg = fmt.Sprintf("%d of %d paths failed", failed, len(msg.results))
			m.statusErr = true
		} else {
			m.statusMsg = fmt.Sprintf("✓ All %d paths OK", len(msg.results))
			m.statusErr = false
		}
		return m, nil

	case createMsg:
		switch {
		case msg.result.Error != nil:
			m.statusMsg = fmt.Sprintf("Create failed: %v", msg.result.Error)
			m.statusErr = true
			return m, nil
		case msg.result.Created:
			m.statusMsg = fmt.Sprintf("✓ Created %s", msg.result.Path)
		default:
			m.statusMsg = fmt.Sprintf("%s already exists", msg.result.Path)
		}
		m.statusErr = false
		// Refresh the row so it reflects the file now on disk
		return m, m.checkPath(msg.index)

	case tea.KeyMsg:
		// Clear status on any key
		m.statusMsg = ""
		m.statusErr = false

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			m.moveCursor(-1)

		case key.Matches(msg, keys.Down):
			m.moveCursor(1)

		case key.Matches(msg, keys.Check):
			return m, m.checkPath(m.cursor)

		case key.Matches(msg, keys.CheckAll):
			return m, m.checkAll()

		case key.Matches(msg, keys.Create):
			return m, m.createPath(m.cursor)

		case key.Matches(msg, keys.Detail):
			if m.view == PathsView && len(m.items) > 0 {
				m.view = DetailView
			}

		case key.Matches(msg, keys.Back):
			m.view = PathsView
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.view != PathsView {
		return
	}
	m.cursor += delta
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) applyCheck(index int, result ports.TUICheckResult) {
	if index < 0 || index >= len(m.items) {
		return
	}
	m.items[index].Checked = true
	m.items[index].Result = result
}

func (m *Model) checkPath(index int) tea.Cmd {
	if index < 0 || index >= len(m.items) {
		return nil
	}
	path := m.items[index].Path
	return func() tea.Msg {
		return checkMsg{index: index, result: m.service.Check(m.config, path)}
	}
}

func (m *Model) checkAll() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	paths := make([]string, len(m.items))
	for i, item := range m.items {
		paths[i] = item.Path
	}
	return func() tea.Msg {
		results := make([]ports.TUICheckResult, len(paths))
		for i, p := range paths {
			results[i] = m.service.Check(m.config, p)
		}
		return checkAllMsg{results: results}
	}
}

func (m *Model) createPath(index int) tea.Cmd {
	if index < 0 || index >= len(m.items) {
		return nil
	}
	path := m.items[index].Path
	return func() tea.Msg {
		return createMsg{index: index, result: m.service.Create(m.config, path)}
	}
}

func describeCheck(r ports.TUICheckResult) (string, bool) {
	switch r.Kind {
	case "none":
		return fmt.Sprintf("✓ %s is readable", r.Path), false
	case "not_found":
		return fmt.Sprintf("✗ %s does not exist", r.Path), true
	case "invalid_input":
		return fmt.Sprintf("✗ Bad path: %v", r.Error), true
	default:
		return fmt.Sprintf("✗ %v", r.Error), true
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.view {
	case DetailView:
		content = m.renderDetailView()
	default:
		content = m.renderPathsView()
	}
	return appStyle.Render(content)
}

func (m *Model) renderPathsView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" 📂 filecheck "))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(dimStyle.Render("No paths configured. Add some under 'watch' in ~/.filecheck/config.yaml"))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(cursor)
		b.WriteString(style.Render(fmt.Sprintf("%-50s", truncate(item.Path, 50))))
		b.WriteString(" ")
		b.WriteString(badge(item))
		b.WriteString("\n")
	}

	m.renderStatus(&b)

	help := "[↑/↓] navigate  [enter] check  [a] check all  [c] create  [d] details  [q] quit"
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func (m *Model) renderDetailView() string {
	var b strings.Builder
	item := m.items[m.cursor]

	b.WriteString(titleStyle.Render(fmt.Sprintf(" 📄 %s ", item.Path)))
	b.WriteString("\n\n")

	if !item.Checked {
		b.WriteString(dimStyle.Render("Not checked yet. Press enter to check."))
		b.WriteString("\n")
	} else {
		r := item.Result
		fmt.Fprintf(&b, "  Existed:  %t\n", r.Existed)
		fmt.Fprintf(&b, "  Opened:   %t\n", r.Opened)
		fmt.Fprintf(&b, "  Result:   %s\n", badge(item))
		if r.Error != nil {
			fmt.Fprintf(&b, "  Error:    %s\n", errorBadge.Render(r.Error.Error()))
		}
		if r.Diagnostic != "" {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("  " + r.Diagnostic))
			b.WriteString("\n")
		}
	}

	m.renderStatus(&b)

	help := "[enter] check  [c] create  [esc] back  [q] quit"
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func (m *Model) renderStatus(b *strings.Builder) {
	b.WriteString("\n")
	if m.statusMsg != "" {
		if m.statusErr {
			b.WriteString(errorBadge.Render(m.statusMsg))
		} else {
			b.WriteString(successBadge.Render(m.statusMsg))
		}
	}
	b.WriteString("\n")
}

func badge(item PathItem) string {
	if !item.Checked {
		return dimStyle.Render("unchecked")
	}
	switch item.Result.Kind {
	case "none":
		return successBadge.Render("✓ ok")
	case "not_found":
		return warnBadge.Render("✗ not found")
	case "invalid_input":
		return errorBadge.Render("✗ invalid")
	default:
		return errorBadge.Render("✗ i/o failure")
	}
}

// Run starts the TUI
func Run() error {
	m, err := NewModelWithService(tuisvc.New(osfs.New()))
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Helper functions
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
