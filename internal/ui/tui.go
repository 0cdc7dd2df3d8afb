package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/store"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RunBrowser starts the read-only task browser over the store. It reloads
// from disk on demand, so edits made by other invocations show up on
// refresh.
func RunBrowser(ctx context.Context, openStore func() *store.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	m := newBrowserModel(openStore)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type browserModel struct {
	openStore func() *store.Store

	users    []*model.User
	projects []*model.Project
	tasks    []*model.Task

	filter   model.Status // empty means all
	showHelp bool
}

func newBrowserModel(openStore func() *store.Store) *browserModel {
	m := &browserModel{openStore: openStore}
	m.refresh()
	return m
}

func (m *browserModel) refresh() {
	st := m.openStore()
	m.users = st.GetUsers()
	m.projects = st.GetProjects()
	m.tasks = st.GetTasks()
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "a", "0":
			m.filter = ""
			return m, nil
		case "1":
			m.filter = model.StatusPending
			return m, nil
		case "2":
			m.filter = model.StatusInProgress
			return m, nil
		case "3":
			m.filter = model.StatusCompleted
			return m, nil
		}
	}
	return m, nil
}

func (m *browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("taskdeck"))
	b.WriteString("\n\n")

	if m.showHelp {
		writeBrowserHelp(&b)
		writeBrowserFooter(&b)
		return b.String()
	}

	counts := map[model.Status]int{}
	for _, t := range m.tasks {
		counts[t.Status()]++
	}
	b.WriteString(fmt.Sprintf("Users: %d  Projects: %d  Tasks: %d (%s %d / %s %d / %s %d)\n\n",
		len(m.users), len(m.projects), len(m.tasks),
		StatusCell(model.StatusPending), counts[model.StatusPending],
		StatusCell(model.StatusInProgress), counts[model.StatusInProgress],
		StatusCell(model.StatusCompleted), counts[model.StatusCompleted]))

	if m.filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s (a to clear)\n\n", m.filter))
	}

	tasks := m.tasks
	if m.filter != "" {
		tasks = nil
		for _, t := range m.tasks {
			if t.Status() == m.filter {
				tasks = append(tasks, t)
			}
		}
	}

	b.WriteString(RenderTasks(tasks, m.projects, m.users))
	b.WriteString("\n")
	writeBrowserFooter(&b)
	return b.String()
}

func writeBrowserHelp(b *strings.Builder) {
	b.WriteString("Keys:\n")
	b.WriteString("  1/2/3   filter pending / in_progress / completed\n")
	b.WriteString("  a, 0    show all tasks\n")
	b.WriteString("  r, f5   reload from disk\n")
	b.WriteString("  h, ?    toggle this help\n")
	b.WriteString("  q       quit\n\n")
}

func writeBrowserFooter(b *strings.Builder) {
	b.WriteString(footerStyle.Render("q quit · r reload · 1/2/3 filter · ? help"))
	b.WriteString("\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
