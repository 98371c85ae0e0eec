package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Capture form: title, estimated minutes, tags, and a mandatory point on the
// importance/urgency square. The picker is a coarse grid; the selected cell
// maps back to -1..1 on both axes (rounded to 4 decimals, like the stored
// coordinates).

type captureField int

const (
	fieldTitle captureField = iota
	fieldMinutes
	fieldTags
	fieldPicker
)

const (
	pickerCols = 21
	pickerRows = 11
)

type captureResult struct {
	parentID *string
	title    string
	minutes  int
	x, y     float64
	tags     string
}

type captureModel struct {
	parentID    *string
	parentLabel string

	inputs [3]textinput.Model
	focus  captureField

	col, row int
	selected bool

	errMsg string
}

func newCaptureModel(parentID *string, parentLabel string) captureModel {
	m := captureModel{
		parentID:    parentID,
		parentLabel: parentLabel,
		col:         (pickerCols - 1) / 2,
		row:         (pickerRows - 1) / 2,
	}

	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 200
	title.Width = 40
	title.Focus()
	m.inputs[fieldTitle] = title

	minutes := textinput.New()
	minutes.Placeholder = "30"
	minutes.SetValue("30")
	minutes.CharLimit = 5
	minutes.Width = 8
	m.inputs[fieldMinutes] = minutes

	tags := textinput.New()
	tags.Placeholder = "exam math"
	tags.CharLimit = 200
	tags.Width = 40
	m.inputs[fieldTags] = tags

	return m
}

func (m captureModel) pickerX() float64 {
	return round4(float64(m.col)/float64(pickerCols-1)*2 - 1)
}

func (m captureModel) pickerY() float64 {
	return round4(1 - float64(m.row)/float64(pickerRows-1)*2)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func (m captureModel) setFocus(f captureField) captureModel {
	m.focus = f
	for i := range m.inputs {
		if captureField(i) == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

// update returns the next model plus either a finished result or a cancel
// signal. Exactly one of res/cancelled is set when the form is done.
func (m captureModel) update(msg tea.Msg) (captureModel, tea.Cmd, *captureResult, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, nil, false
	}

	switch key.String() {
	case "esc":
		return m, nil, nil, true

	case "tab", "down":
		if key.String() == "down" && m.focus == fieldPicker {
			break
		}
		next := m.focus + 1
		if next > fieldPicker {
			next = fieldTitle
		}
		return m.setFocus(next), nil, nil, false

	case "shift+tab", "up":
		if key.String() == "up" && m.focus == fieldPicker {
			break
		}
		next := m.focus - 1
		if next < fieldTitle {
			next = fieldPicker
		}
		return m.setFocus(next), nil, nil, false

	case "ctrl+s":
		return m.finish()

	case "enter":
		if m.focus == fieldPicker {
			m.selected = true
			return m, nil, nil, false
		}
		return m.setFocus(m.focus + 1), nil, nil, false
	}

	if m.focus == fieldPicker {
		switch key.String() {
		case "left", "h":
			if m.col > 0 {
				m.col--
			}
		case "right", "l":
			if m.col < pickerCols-1 {
				m.col++
			}
		case "up", "k":
			if m.row > 0 {
				m.row--
			}
		case "down", "j":
			if m.row < pickerRows-1 {
				m.row++
			}
		case " ":
			m.selected = true
		}
		return m, nil, nil, false
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, nil, false
}

func (m captureModel) finish() (captureModel, tea.Cmd, *captureResult, bool) {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		m.errMsg = "Task title cannot be empty."
		return m.setFocus(fieldTitle), nil, nil, false
	}

	minutes := 30
	if raw := strings.TrimSpace(m.inputs[fieldMinutes].Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			m.errMsg = "Minutes must be a non-negative number."
			return m.setFocus(fieldMinutes), nil, nil, false
		}
		minutes = n
	}

	if !m.selected {
		m.errMsg = "You must select a point on the axis."
		return m.setFocus(fieldPicker), nil, nil, false
	}

	res := &captureResult{
		parentID: m.parentID,
		title:    title,
		minutes:  minutes,
		x:        m.pickerX(),
		y:        m.pickerY(),
		tags:     strings.TrimSpace(m.inputs[fieldTags].Value()),
	}
	return m, nil, res, false
}

func (m captureModel) view() string {
	var b strings.Builder

	heading := "New task"
	if m.parentID != nil {
		heading = "New subtask of " + m.parentLabel
	}
	b.WriteString(styleAccent().Bold(true).Render(heading))
	b.WriteString("\n\n")

	label := func(f captureField, text string) string {
		if m.focus == f {
			return styleAccent().Render("> " + text)
		}
		return styleMuted().Render("  " + text)
	}

	b.WriteString(label(fieldTitle, "Title") + "\n")
	b.WriteString("  " + m.inputs[fieldTitle].View() + "\n\n")
	b.WriteString(label(fieldMinutes, "Minutes") + "\n")
	b.WriteString("  " + m.inputs[fieldMinutes].View() + "\n\n")
	b.WriteString(label(fieldTags, "Tags") + "\n")
	b.WriteString("  " + m.inputs[fieldTags].View() + "\n\n")

	b.WriteString(label(fieldPicker, "Importance / urgency"))
	if m.selected {
		b.WriteString(styleMuted().Render(fmt.Sprintf("  (%.2f, %.2f)", m.pickerX(), m.pickerY())))
	}
	b.WriteString("\n")
	b.WriteString(m.pickerView())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(styleError().Render(m.errMsg) + "\n")
	}
	b.WriteString(styleMuted().Render("tab next field · arrows move · enter/space pick point · ctrl+s save · esc cancel"))

	return b.String()
}

func (m captureModel) pickerView() string {
	cx, cy := (pickerCols-1)/2, (pickerRows-1)/2
	axis := styleMuted()
	cursor := styleSelected()
	mark := styleAccent().Bold(true)

	rows := make([]string, pickerRows)
	for r := 0; r < pickerRows; r++ {
		var line strings.Builder
		for c := 0; c < pickerCols; c++ {
			cell := " "
			switch {
			case r == cy && c == cx:
				cell = axis.Render("┼")
			case r == cy:
				cell = axis.Render("─")
			case c == cx:
				cell = axis.Render("│")
			}
			if m.selected && r == m.row && c == m.col {
				cell = mark.Render("✕")
			}
			if m.focus == fieldPicker && r == m.row && c == m.col {
				cell = cursor.Render("+")
			}
			line.WriteString(cell)
		}
		rows[r] = line.String()
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted)
	return box.Render(strings.Join(rows, "\n"))
}
