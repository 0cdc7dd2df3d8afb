package model

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Project represents a project owned by a user, holding a list of task IDs.
// OwnerID is not validated against existing users here; the command layer
// resolves owners before construction.
type Project struct {
	id          int
	title       string
	description string
	ownerID     int
	dueDate     *time.Time
	tasks       []int
}

// ProjectRecord is the serialized form of a Project. DueDate is an
// ISO-8601 string or null.
type ProjectRecord struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	OwnerID     int     `json:"owner_id"`
	DueDate     *string `json:"due_date"`
	Tasks       []int   `json:"tasks"`
}

// NewProject creates a project with a freshly minted ID from ids. The due
// date is parsed best-effort: unparseable input yields no due date, never
// an error.
func NewProject(title, description string, ownerID int, dueDate string, ids *Counter) (*Project, error) {
	p := &Project{id: ids.Next(), ownerID: ownerID, tasks: []int{}}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	p.SetDescription(description)
	p.SetDueDate(dueDate)
	return p, nil
}

// ProjectFromRecord reconstructs a project from its stored record and
// advances ids past the record's ID.
func ProjectFromRecord(rec ProjectRecord, ids *Counter) *Project {
	ids.Observe(rec.ID)
	p := &Project{
		id:          rec.ID,
		title:       rec.Title,
		description: rec.Description,
		ownerID:     rec.OwnerID,
		tasks:       copyIDs(rec.Tasks),
	}
	if rec.DueDate != nil {
		p.dueDate = parseDate(*rec.DueDate)
	}
	return p
}

// Record returns the serialized form of the project.
func (p *Project) Record() ProjectRecord {
	rec := ProjectRecord{
		ID:          p.id,
		Title:       p.title,
		Description: p.description,
		OwnerID:     p.ownerID,
		Tasks:       copyIDs(p.tasks),
	}
	if p.dueDate != nil {
		due := p.dueDate.Format(time.RFC3339)
		rec.DueDate = &due
	}
	return rec
}

// ID returns the project's ID.
func (p *Project) ID() int { return p.id }

// Title returns the project's title.
func (p *Project) Title() string { return p.title }

// Description returns the project's description.
func (p *Project) Description() string { return p.description }

// OwnerID returns the ID of the user who owns this project.
func (p *Project) OwnerID() int { return p.ownerID }

// DueDate returns the project's due date, or nil if it has none.
func (p *Project) DueDate() *time.Time { return p.dueDate }

// Tasks returns a copy of the task IDs associated with this project.
func (p *Project) Tasks() []int { return copyIDs(p.tasks) }

// SetTitle sets the project's title. The value is trimmed; an empty result
// is rejected.
func (p *Project) SetTitle(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return validationErr("title", "cannot be empty")
	}
	p.title = trimmed
	return nil
}

// SetDescription sets the project's description, trimmed. Empty is allowed.
func (p *Project) SetDescription(value string) {
	p.description = strings.TrimSpace(value)
}

// SetDueDate parses value and sets the due date. Unparseable or empty input
// clears the due date rather than reporting an error.
func (p *Project) SetDueDate(value string) {
	p.dueDate = parseDate(value)
}

// AddTask adds a task ID to the project's list. Adding an ID that is
// already present is a no-op.
func (p *Project) AddTask(taskID int) {
	if !containsID(p.tasks, taskID) {
		p.tasks = append(p.tasks, taskID)
	}
}

// RemoveTask removes a task ID from the project's list if present.
func (p *Project) RemoveTask(taskID int) {
	p.tasks = removeID(p.tasks, taskID)
}

// parseDate parses free-form date input such as "2024-12-31" or
// "Dec 31 2024". Unparseable or empty input yields nil.
func parseDate(value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return nil
	}
	return &t
}
