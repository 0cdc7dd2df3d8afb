// Package ui renders tables, messages, and the interactive browser.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/taskdeck/taskdeck/internal/model"
)

const descriptionLimit = 50

var (
	borderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle    = lipgloss.NewStyle().Bold(true)
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	inProgStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func newTable(headers ...string) *table.Table {
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = headerStyle.Render(h)
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(styled...)
}

// RenderUsers renders users as a table, or a notice when there are none.
func RenderUsers(users []*model.User) string {
	if len(users) == 0 {
		return emptyStyle.Render("No users found.")
	}
	t := newTable("ID", "Name", "Email", "Projects")
	for _, u := range users {
		t.Row(
			strconv.Itoa(u.ID()),
			u.Name(),
			u.Email(),
			strconv.Itoa(len(u.Projects())),
		)
	}
	return t.Render()
}

// RenderProjects renders projects as a table. users, when given, resolves
// owner IDs to names; unresolved owners show as "ID:<n>".
func RenderProjects(projects []*model.Project, users []*model.User) string {
	if len(projects) == 0 {
		return emptyStyle.Render("No projects found.")
	}
	owners := userNames(users)
	t := newTable("ID", "Title", "Description", "Owner", "Due Date", "Tasks")
	for _, p := range projects {
		due := "No due date"
		if d := p.DueDate(); d != nil {
			due = d.Format("2006-01-02")
		}
		t.Row(
			strconv.Itoa(p.ID()),
			p.Title(),
			truncate(p.Description(), descriptionLimit),
			lookupName(owners, p.OwnerID()),
			due,
			strconv.Itoa(len(p.Tasks())),
		)
	}
	return t.Render()
}

// RenderTasks renders tasks as a table with colorized status. projects and
// users, when given, resolve foreign keys to names.
func RenderTasks(tasks []*model.Task, projects []*model.Project, users []*model.User) string {
	if len(tasks) == 0 {
		return emptyStyle.Render("No tasks found.")
	}
	titles := projectTitles(projects)
	names := userNames(users)
	t := newTable("ID", "Title", "Status", "Project", "Assigned To")
	for _, task := range tasks {
		assigned := make([]string, 0, len(task.AssignedTo()))
		for _, userID := range task.AssignedTo() {
			assigned = append(assigned, lookupName(names, userID))
		}
		assignedStr := "Unassigned"
		if len(assigned) > 0 {
			assignedStr = strings.Join(assigned, ", ")
		}
		t.Row(
			strconv.Itoa(task.ID()),
			task.Title(),
			StatusCell(task.Status()),
			lookupName(titles, task.ProjectID()),
			assignedStr,
		)
	}
	return t.Render()
}

// StatusCell returns the status string styled by its value: completed is
// green, in_progress yellow, pending red.
func StatusCell(status model.Status) string {
	switch status {
	case model.StatusCompleted:
		return completedStyle.Render(string(status))
	case model.StatusInProgress:
		return inProgStyle.Render(string(status))
	default:
		return pendingStyle.Render(string(status))
	}
}

func userNames(users []*model.User) map[int]string {
	m := make(map[int]string, len(users))
	for _, u := range users {
		m[u.ID()] = u.Name()
	}
	return m
}

func projectTitles(projects []*model.Project) map[int]string {
	m := make(map[int]string, len(projects))
	for _, p := range projects {
		m[p.ID()] = p.Title()
	}
	return m
}

func lookupName(m map[int]string, id int) string {
	if name, ok := m[id]; ok {
		return name
	}
	return fmt.Sprintf("ID:%d", id)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
