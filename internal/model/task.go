package model

import "strings"

// Status represents a task status.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a task within a project that can be assigned to users.
// ProjectID is not validated against existing projects here.
type Task struct {
	id         int
	title      string
	status     Status
	projectID  int
	assignedTo []int
}

// TaskRecord is the serialized form of a Task.
type TaskRecord struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Status     Status `json:"status"`
	ProjectID  int    `json:"project_id"`
	AssignedTo []int  `json:"assigned_to"`
}

// NewTask creates a task with a freshly minted ID from ids. An unknown
// status is silently coerced to pending; only SetStatus rejects bad values.
func NewTask(title string, projectID int, status Status, ids *Counter) (*Task, error) {
	t := &Task{id: ids.Next(), projectID: projectID, assignedTo: []int{}}
	if err := t.SetTitle(title); err != nil {
		return nil, err
	}
	t.status = StatusPending
	if status.Valid() {
		t.status = status
	}
	return t, nil
}

// TaskFromRecord reconstructs a task from its stored record and advances
// ids past the record's ID. An unknown stored status degrades to pending,
// same as construction.
func TaskFromRecord(rec TaskRecord, ids *Counter) *Task {
	ids.Observe(rec.ID)
	t := &Task{
		id:         rec.ID,
		title:      rec.Title,
		status:     StatusPending,
		projectID:  rec.ProjectID,
		assignedTo: copyIDs(rec.AssignedTo),
	}
	if rec.Status.Valid() {
		t.status = rec.Status
	}
	return t
}

// Record returns the serialized form of the task.
func (t *Task) Record() TaskRecord {
	return TaskRecord{
		ID:         t.id,
		Title:      t.title,
		Status:     t.status,
		ProjectID:  t.projectID,
		AssignedTo: copyIDs(t.assignedTo),
	}
}

// ID returns the task's ID.
func (t *Task) ID() int { return t.id }

// Title returns the task's title.
func (t *Task) Title() string { return t.title }

// Status returns the task's status.
func (t *Task) Status() Status { return t.status }

// ProjectID returns the ID of the project this task belongs to.
func (t *Task) ProjectID() int { return t.projectID }

// AssignedTo returns a copy of the user IDs assigned to this task.
func (t *Task) AssignedTo() []int { return copyIDs(t.assignedTo) }

// SetTitle sets the task's title. The value is trimmed; an empty result is
// rejected.
func (t *Task) SetTitle(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return validationErr("title", "cannot be empty")
	}
	t.title = trimmed
	return nil
}

// SetStatus sets the task's status. Unlike construction, an unknown status
// is rejected here.
func (t *Task) SetStatus(value Status) error {
	if !value.Valid() {
		return validationErr("status", "must be one of %s, %s, %s",
			StatusPending, StatusInProgress, StatusCompleted)
	}
	t.status = value
	return nil
}

// MarkCompleted marks this task as completed.
func (t *Task) MarkCompleted() { t.status = StatusCompleted }

// MarkInProgress marks this task as in progress.
func (t *Task) MarkInProgress() { t.status = StatusInProgress }

// MarkPending marks this task as pending.
func (t *Task) MarkPending() { t.status = StatusPending }

// AssignUser assigns a user to this task. Assigning a user who is already
// assigned is a no-op.
func (t *Task) AssignUser(userID int) {
	if !containsID(t.assignedTo, userID) {
		t.assignedTo = append(t.assignedTo, userID)
	}
}

// UnassignUser removes a user from this task if assigned.
func (t *Task) UnassignUser(userID int) {
	t.assignedTo = removeID(t.assignedTo, userID)
}
