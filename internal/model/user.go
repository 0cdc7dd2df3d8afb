package model

import "strings"

// User represents a person who can own projects and be assigned to tasks.
// The projects list is a lookup aid; the Project's OwnerID is the authority
// on ownership.
type User struct {
	id       int
	name     string
	email    string
	projects []int
}

// UserRecord is the serialized form of a User.
type UserRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Projects []int  `json:"projects"`
}

// NewUser creates a user with a freshly minted ID from ids.
func NewUser(name, email string, ids *Counter) (*User, error) {
	u := &User{id: ids.Next(), projects: []int{}}
	if err := u.SetName(name); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	return u, nil
}

// UserFromRecord reconstructs a user from its stored record and advances
// ids past the record's ID. Stored values are trusted as-is.
func UserFromRecord(rec UserRecord, ids *Counter) *User {
	ids.Observe(rec.ID)
	return &User{
		id:       rec.ID,
		name:     rec.Name,
		email:    rec.Email,
		projects: copyIDs(rec.Projects),
	}
}

// Record returns the serialized form of the user.
func (u *User) Record() UserRecord {
	return UserRecord{
		ID:       u.id,
		Name:     u.name,
		Email:    u.email,
		Projects: copyIDs(u.projects),
	}
}

// ID returns the user's ID.
func (u *User) ID() int { return u.id }

// Name returns the user's name.
func (u *User) Name() string { return u.name }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// Projects returns a copy of the project IDs associated with this user.
func (u *User) Projects() []int { return copyIDs(u.projects) }

// SetName sets the user's name. The value is trimmed; an empty result is
// rejected.
func (u *User) SetName(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return validationErr("name", "cannot be empty")
	}
	u.name = trimmed
	return nil
}

// SetEmail sets the user's email address. The value must contain an @.
func (u *User) SetEmail(value string) error {
	if !strings.Contains(value, "@") {
		return validationErr("email", "invalid email address")
	}
	u.email = strings.TrimSpace(value)
	return nil
}

// AddProject adds a project ID to the user's list. Adding an ID that is
// already present is a no-op.
func (u *User) AddProject(projectID int) {
	if !containsID(u.projects, projectID) {
		u.projects = append(u.projects, projectID)
	}
}

// RemoveProject removes a project ID from the user's list if present.
func (u *User) RemoveProject(projectID int) {
	u.projects = removeID(u.projects, projectID)
}
