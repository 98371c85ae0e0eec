package tui

import (
	"fmt"
	"strings"

	"taskplane/internal/model"
	"taskplane/internal/mutate"
	"taskplane/internal/tracker"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

type view int

const (
	viewTree view = iota
	viewCapture
	viewPlane
)

// treeRow is one visible line of the task tree, in display order.
type treeRow struct {
	id        string
	depth     int
	text      string
	completed bool
	children  bool
	collapsed bool
}

type appModel struct {
	tr *tracker.Tracker

	width  int
	height int

	view view

	rows      []treeRow
	cursor    int
	collapsed map[string]bool

	capture captureModel

	status    string
	statusErr bool
}

// Run starts the interactive tree/capture/plane UI on top of an open tracker.
func Run(tr *tracker.Tracker) error {
	applyColorProfilePreference()
	applyThemePreference()
	_, err := tea.NewProgram(newAppModel(tr), tea.WithAltScreen()).Run()
	return err
}

func newAppModel(tr *tracker.Tracker) appModel {
	m := appModel{
		tr:        tr,
		collapsed: map[string]bool{},
	}
	m.refreshRows()
	return m
}

func (m *appModel) refreshRows() {
	m.rows = m.rows[:0]
	var walk func(nodes []model.Task, depth int)
	walk = func(nodes []model.Task, depth int) {
		for i := range nodes {
			n := &nodes[i]
			folded := m.collapsed[n.ID]
			m.rows = append(m.rows, treeRow{
				id:        n.ID,
				depth:     depth,
				text:      n.DisplayText(),
				completed: n.Completed,
				children:  len(n.Children) > 0,
				collapsed: folded,
			})
			if !folded {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(m.tr.Forest, 0)
	m.clampCursor()
}

func (m *appModel) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *appModel) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *appModel) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case viewCapture:
			return m.updateCapture(msg)
		case viewPlane:
			switch msg.String() {
			case "q", "esc", "g":
				m.view = viewTree
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		default:
			return m.updateTree(msg)
		}
	}

	return m, nil
}

func (m appModel) updateCapture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd, res, cancelled := m.capture.update(msg)
	m.capture = next
	if cancelled {
		m.view = viewTree
		return m, nil
	}
	if res != nil {
		task, err := m.tr.CreateTask(res.parentID, res.title, res.minutes, res.x, res.y, res.tags)
		if err != nil {
			m.capture.errMsg = err.Error()
			return m, nil
		}
		if res.parentID != nil {
			// A new subtask should be visible right away.
			delete(m.collapsed, *res.parentID)
		}
		m.view = viewTree
		m.refreshRows()
		m.setStatus("Added %q", task.Title)
	}
	return m, cmd
}

func (m appModel) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case " ":
		if len(m.rows) == 0 {
			break
		}
		row := m.rows[m.cursor]
		res, err := m.tr.ToggleCompletion(row.id)
		if err != nil {
			m.setError(err)
			break
		}
		m.refreshRows()
		if res.Outcome == mutate.OutcomeDeleted {
			m.setStatus("Deleted %q (press u to undo)", res.Task.Title)
		} else {
			m.setStatus("Completed %q", res.Task.Title)
		}

	case "u":
		restored, ok, err := m.tr.UndoLastDelete()
		if err != nil {
			m.setError(err)
			break
		}
		if !ok {
			m.setStatus("Nothing to undo")
			break
		}
		m.refreshRows()
		m.setStatus("Restored %q", restored.Title)

	case "n":
		m.capture = newCaptureModel(nil, "")
		m.view = viewCapture

	case "enter":
		if len(m.rows) == 0 {
			break
		}
		row := m.rows[m.cursor]
		id := row.id
		m.capture = newCaptureModel(&id, row.text)
		m.view = viewCapture

	case "tab":
		if len(m.rows) == 0 {
			break
		}
		row := m.rows[m.cursor]
		if row.children {
			if m.collapsed[row.id] {
				delete(m.collapsed, row.id)
			} else {
				m.collapsed[row.id] = true
			}
			m.refreshRows()
		}

	case "e":
		m.collapsed = map[string]bool{}
		m.refreshRows()

	case "c":
		for i := range m.rows {
			if m.rows[i].children {
				m.collapsed[m.rows[i].id] = true
			}
		}
		m.refreshRows()

	case "g":
		m.view = viewPlane
	}

	return m, nil
}

func (m appModel) View() string {
	switch m.view {
	case viewCapture:
		return m.capture.view()
	case viewPlane:
		body := RenderPlane(model.Flatten(m.tr.Forest), m.width-4, m.height-6)
		hint := styleMuted().Render("g/esc back · q quit")
		return body + "\n" + hint
	default:
		return m.treeView()
	}
}

func (m appModel) treeView() string {
	var b strings.Builder
	b.WriteString(styleAccent().Bold(true).Render("Taskplane"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(styleMuted().Render("No tasks yet. Press n to add one.") + "\n")
	}

	visible := m.height - 6
	if visible < 1 {
		visible = len(m.rows)
	}
	start := m.scrollStart(visible)
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i) + "\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(styleError().Render(m.status))
		} else {
			b.WriteString(m.status)
		}
		b.WriteString("\n")
	}
	b.WriteString(styleMuted().Render("space complete, again to delete · enter subtask · n new · u undo · tab fold · g plane · q quit"))
	return b.String()
}

func (m appModel) scrollStart(visible int) int {
	if m.cursor < visible {
		return 0
	}
	return m.cursor - visible + 1
}

func (m appModel) renderRow(i int) string {
	row := m.rows[i]

	marker := "  "
	switch {
	case row.collapsed:
		marker = "▸ "
	case row.children:
		marker = "▾ "
	}
	check := "[ ] "
	if row.completed {
		check = "[x] "
	}

	line := strings.Repeat("  ", row.depth) + marker + check + row.text
	if m.width > 0 {
		line = xansi.Cut(line, 0, m.width)
	}

	switch {
	case i == m.cursor:
		return styleSelected().Render(line)
	case row.completed:
		return styleDone().Render(line)
	default:
		return line
	}
}
