// Package tui holds the interactive terminal components.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// CourseOption represents one configured course.
type CourseOption struct {
	Name string // config key
	Show string // Plex show name
	Link string // course player URL
}

// FilterValue implements list.Item
func (c CourseOption) FilterValue() string {
	return c.Name + " " + c.Show
}

// courseDelegate renders course rows as single highlighted lines.
type courseDelegate struct{}

func (courseDelegate) Height() int                             { return 1 }
func (courseDelegate) Spacing() int                            { return 0 }
func (courseDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (courseDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	course, ok := item.(CourseOption)
	if !ok {
		return
	}

	display := course.Name
	if course.Show != "" && course.Show != course.Name {
		display = fmt.Sprintf("%s (%s)", course.Name, StyleMeta.Render(course.Show))
	}

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleAccent.Render("›")+" "+StyleHighlight.Render(display))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(display))
	}
}

type coursePickerModel struct {
	list     list.Model
	selected string
	canceled bool
}

func (m coursePickerModel) Init() tea.Cmd {
	return nil
}

func (m coursePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Let the list's filter input consume keys while active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(CourseOption); ok {
				m.selected = item.Name
				return m, tea.Quit
			}
		case "q", "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m coursePickerModel) View() string {
	return m.list.View()
}

// RunCoursePicker launches an interactive course selector.
// Returns the selected course name, or an error if canceled.
func RunCoursePicker(courses []CourseOption) (string, error) {
	if len(courses) == 0 {
		return "", fmt.Errorf("no courses configured")
	}
	if len(courses) == 1 {
		return courses[0].Name, nil
	}

	items := make([]list.Item, len(courses))
	for i, c := range courses {
		items[i] = c
	}

	l := list.New(items, courseDelegate{}, 0, 0)
	l.Title = "Select Course"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.HelpStyle = StyleHelp

	p := tea.NewProgram(coursePickerModel{list: l}, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running course picker: %w", err)
	}

	fm, ok := finalModel.(coursePickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if fm.canceled || fm.selected == "" {
		return "", fmt.Errorf("no course selected")
	}
	return fm.selected, nil
}
