// Package store owns the on-disk JSON document holding all taskdeck state.
//
// The store loads the whole document into memory at construction and writes
// the whole document back after every mutation, so the file on disk is
// always a complete snapshot. A missing, empty, or malformed file is healed
// by reinitializing three empty collections; load problems surface as
// logged warnings, never as errors to callers.
//
// No locking: the store is single-process by design. Two processes writing
// the same file race, and the last full-document write wins.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/taskdeck/taskdeck/internal/model"
)

// Document is the three-collection structure persisted to disk.
type Document struct {
	Users    []model.UserRecord    `json:"users"`
	Projects []model.ProjectRecord `json:"projects"`
	Tasks    []model.TaskRecord    `json:"tasks"`
}

func emptyDocument() Document {
	return Document{
		Users:    []model.UserRecord{},
		Projects: []model.ProjectRecord{},
		Tasks:    []model.TaskRecord{},
	}
}

// Store mediates all reads and writes of entities against one JSON file.
// ID counters are owned here, scoped to the store instance, and recomputed
// from the loaded document.
type Store struct {
	path   string
	doc    Document
	logger *log.Logger

	userIDs    *model.Counter
	projectIDs *model.Counter
	taskIDs    *model.Counter
}

// Open loads the document at path. It never fails: a missing, empty, or
// malformed file is replaced with an empty document, written out
// immediately, and reported through logger.
func Open(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		path:       path,
		logger:     logger,
		userIDs:    model.NewCounter(),
		projectIDs: model.NewCounter(),
		taskIDs:    model.NewCounter(),
	}
	s.load()
	return s
}

// Path returns the store's file path.
func (s *Store) Path() string { return s.path }

// UserIDs returns the counter for user IDs.
func (s *Store) UserIDs() *model.Counter { return s.userIDs }

// ProjectIDs returns the counter for project IDs.
func (s *Store) ProjectIDs() *model.Counter { return s.projectIDs }

// TaskIDs returns the counter for task IDs.
func (s *Store) TaskIDs() *model.Counter { return s.taskIDs }

func (s *Store) load() {
	s.doc = emptyDocument()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("could not read store file, starting with empty data",
				"path", s.path, "err", err)
		}
		s.persist()
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.persist()
		return
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("could not parse store file, starting with empty data",
			"path", s.path, "err", err)
		s.persist()
		return
	}

	if err := validateDocument(data); err != nil {
		s.logger.Warn("store file failed schema check, starting with empty data",
			"path", s.path, "err", err)
		s.persist()
		return
	}

	// Missing top-level keys come back as nil slices; synthesize them.
	if doc.Users == nil {
		doc.Users = []model.UserRecord{}
	}
	if doc.Projects == nil {
		doc.Projects = []model.ProjectRecord{}
	}
	if doc.Tasks == nil {
		doc.Tasks = []model.TaskRecord{}
	}

	s.doc = doc
	s.recountIDs()
}

// recountIDs advances each counter past the maximum ID present in the
// loaded document.
func (s *Store) recountIDs() {
	for _, rec := range s.doc.Users {
		s.userIDs.Observe(rec.ID)
	}
	for _, rec := range s.doc.Projects {
		s.projectIDs.Observe(rec.ID)
	}
	for _, rec := range s.doc.Tasks {
		s.taskIDs.Observe(rec.ID)
	}
}

// persist writes the full document to disk with 2-space indentation and a
// trailing newline. I/O failures are logged and swallowed; the in-memory
// document stays authoritative for the rest of the invocation.
func (s *Store) persist() {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		s.logger.Error("could not encode store document", "err", err)
		return
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.logger.Error("could not write store file", "path", s.path, "err", err)
	}
}

// AddUser appends the user's record and persists. Uniqueness by name is the
// caller's concern.
func (s *Store) AddUser(u *model.User) {
	s.doc.Users = append(s.doc.Users, u.Record())
	s.persist()
}

// GetUsers returns all users in storage order.
func (s *Store) GetUsers() []*model.User {
	users := make([]*model.User, 0, len(s.doc.Users))
	for _, rec := range s.doc.Users {
		users = append(users, model.UserFromRecord(rec, s.userIDs))
	}
	return users
}

// GetUserByID returns the user with the given ID, or nil if not found.
func (s *Store) GetUserByID(id int) *model.User {
	for _, rec := range s.doc.Users {
		if rec.ID == id {
			return model.UserFromRecord(rec, s.userIDs)
		}
	}
	return nil
}

// GetUserByName returns the first user whose name matches, ignoring case,
// or nil if not found.
func (s *Store) GetUserByName(name string) *model.User {
	for _, rec := range s.doc.Users {
		if strings.EqualFold(rec.Name, name) {
			return model.UserFromRecord(rec, s.userIDs)
		}
	}
	return nil
}

// UpdateUser replaces the stored record matching the user's ID and
// persists. Silently does nothing if no record matches.
func (s *Store) UpdateUser(u *model.User) {
	for i, rec := range s.doc.Users {
		if rec.ID == u.ID() {
			s.doc.Users[i] = u.Record()
			s.persist()
			return
		}
	}
}

// AddProject appends the project's record and persists.
func (s *Store) AddProject(p *model.Project) {
	s.doc.Projects = append(s.doc.Projects, p.Record())
	s.persist()
}

// GetProjects returns all projects in storage order.
func (s *Store) GetProjects() []*model.Project {
	projects := make([]*model.Project, 0, len(s.doc.Projects))
	for _, rec := range s.doc.Projects {
		projects = append(projects, model.ProjectFromRecord(rec, s.projectIDs))
	}
	return projects
}

// GetProjectByID returns the project with the given ID, or nil if not found.
func (s *Store) GetProjectByID(id int) *model.Project {
	for _, rec := range s.doc.Projects {
		if rec.ID == id {
			return model.ProjectFromRecord(rec, s.projectIDs)
		}
	}
	return nil
}

// GetProjectByTitle returns the first project whose title matches, ignoring
// case, or nil if not found.
func (s *Store) GetProjectByTitle(title string) *model.Project {
	for _, rec := range s.doc.Projects {
		if strings.EqualFold(rec.Title, title) {
			return model.ProjectFromRecord(rec, s.projectIDs)
		}
	}
	return nil
}

// GetProjectsByOwner returns all projects owned by the given user, in
// storage order.
func (s *Store) GetProjectsByOwner(ownerID int) []*model.Project {
	var projects []*model.Project
	for _, rec := range s.doc.Projects {
		if rec.OwnerID == ownerID {
			projects = append(projects, model.ProjectFromRecord(rec, s.projectIDs))
		}
	}
	return projects
}

// UpdateProject replaces the stored record matching the project's ID and
// persists. Silently does nothing if no record matches.
func (s *Store) UpdateProject(p *model.Project) {
	for i, rec := range s.doc.Projects {
		if rec.ID == p.ID() {
			s.doc.Projects[i] = p.Record()
			s.persist()
			return
		}
	}
}

// AddTask appends the task's record and persists.
func (s *Store) AddTask(t *model.Task) {
	s.doc.Tasks = append(s.doc.Tasks, t.Record())
	s.persist()
}

// GetTasks returns all tasks in storage order.
func (s *Store) GetTasks() []*model.Task {
	tasks := make([]*model.Task, 0, len(s.doc.Tasks))
	for _, rec := range s.doc.Tasks {
		tasks = append(tasks, model.TaskFromRecord(rec, s.taskIDs))
	}
	return tasks
}

// GetTaskByID returns the task with the given ID, or nil if not found.
func (s *Store) GetTaskByID(id int) *model.Task {
	for _, rec := range s.doc.Tasks {
		if rec.ID == id {
			return model.TaskFromRecord(rec, s.taskIDs)
		}
	}
	return nil
}

// GetTasksByProject returns all tasks belonging to the given project, in
// storage order.
func (s *Store) GetTasksByProject(projectID int) []*model.Task {
	var tasks []*model.Task
	for _, rec := range s.doc.Tasks {
		if rec.ProjectID == projectID {
			tasks = append(tasks, model.TaskFromRecord(rec, s.taskIDs))
		}
	}
	return tasks
}

// UpdateTask replaces the stored record matching the task's ID and
// persists. Silently does nothing if no record matches.
func (s *Store) UpdateTask(t *model.Task) {
	for i, rec := range s.doc.Tasks {
		if rec.ID == t.ID() {
			s.doc.Tasks[i] = t.Record()
			s.persist()
			return
		}
	}
}

// DeleteTask removes the task with the given ID and persists. It reports
// whether a record was found and removed. Users and projects have no
// delete; tasks are the only entity that can be removed.
func (s *Store) DeleteTask(id int) bool {
	for i, rec := range s.doc.Tasks {
		if rec.ID == id {
			s.doc.Tasks = append(s.doc.Tasks[:i], s.doc.Tasks[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}
