// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/store"
)

// run invokes the CLI against a store file under dir.
func run(t *testing.T, storePath string, args ...string) {
	t.Helper()
	full := append([]string{"-store", storePath, "-log-level", "error"}, args...)
	if err := Run(context.Background(), full); err != nil {
		t.Fatalf("Run(%v) failed: %v", args, err)
	}
}

func openStore(path string) *store.Store {
	return store.Open(path, log.New(io.Discard))
}

func TestRunHelpAndVersion(t *testing.T) {
	t.Run("help flag", func(t *testing.T) {
		if err := Run(context.Background(), []string{"--help"}); err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
	})
	t.Run("version flag", func(t *testing.T) {
		if err := Run(context.Background(), []string{"-v"}); err != nil {
			t.Errorf("expected no error with -v, got %v", err)
		}
	})
	t.Run("help command", func(t *testing.T) {
		if err := Run(context.Background(), []string{"help"}); err != nil {
			t.Errorf("expected no error with help command, got %v", err)
		}
	})
}

func TestRunUnknownCommand(t *testing.T) {
	err := Run(context.Background(), []string{"frobnicate"})
	if err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestRunNoCommand(t *testing.T) {
	err := Run(context.Background(), nil)
	if err == nil {
		t.Error("expected error when no command is given")
	}
}

func TestAddUserFlow(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "store.json")

	run(t, storePath, "add-user", "-name", "Alice", "-email", "alice@example.com")
	run(t, storePath, "add-user", "-name", "Bob", "-email", "bob@x.com")

	st := openStore(storePath)
	users := st.GetUsers()
	if len(users) != 2 {
		t.Fatalf("user count: got %d, want 2", len(users))
	}
	if users[0].ID() != 1 || users[1].ID() != 2 {
		t.Errorf("user IDs: got %d and %d, want 1 and 2", users[0].ID(), users[1].ID())
	}

	// Duplicate name is rejected without failing the invocation.
	run(t, storePath, "add-user", "-name", "alice", "-email", "other@example.com")
	if got := len(openStore(storePath).GetUsers()); got != 2 {
		t.Errorf("user count after duplicate: got %d, want 2", got)
	}

	// Invalid email is a reported validation error, not a crash.
	run(t, storePath, "add-user", "-name", "Carol", "-email", "not-an-email")
	if got := len(openStore(storePath).GetUsers()); got != 2 {
		t.Errorf("user count after invalid email: got %d, want 2", got)
	}
}

func TestAddUserMissingFlags(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "store.json")
	err := Run(context.Background(), []string{"-store", storePath, "add-user", "-name", "Alice"})
	if err == nil {
		t.Error("expected error when -email is missing")
	}
}

func TestAddProjectFlow(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "store.json")

	run(t, storePath, "add-user", "-name", "Alice", "-email", "alice@example.com")
	run(t, storePath, "add-project",
		"-user", "Alice",
		"-title", "CLI Tool",
		"-description", "Build a CLI app",
		"-due-date", "2026-12-31")

	st := openStore(storePath)
	project := st.GetProjectByTitle("CLI Tool")
	if project == nil {
		t.Fatal("project not found after add-project")
	}
	if project.OwnerID() != 1 {
		t.Errorf("owner_id: got %d, want 1", project.OwnerID())
	}
	if project.DueDate() == nil {
		t.Error("due_date: got nil, want parsed date")
	}

	// The owner's back-reference list was updated through the store.
	alice := st.GetUserByName("Alice")
	if got := alice.Projects(); len(got) != 1 || got[0] != project.ID() {
		t.Errorf("owner projects: got %v, want [%d]", got, project.ID())
	}

	// Unknown owner is a reported error, not a crash.
	run(t, storePath, "add-project", "-user", "Nobody", "-title", "Ghost")
	if openStore(storePath).GetProjectByTitle("Ghost") != nil {
		t.Error("project created for unknown owner")
	}
}

func TestAddTaskFlowWithAssignees(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "store.json")

	run(t, storePath, "add-user", "-name", "Alice", "-email", "alice@example.com")
	run(t, storePath, "add-project", "-user", "Alice", "-title", "CLI Tool")
	run(t, storePath, "add-task",
		"-project", "CLI Tool",
		"-title", "Write tests",
		"-assign", "Alice, Nobody")

	st := openStore(storePath)
	task := st.GetTaskByID(1)
	if task == nil {
		t.Fatal("task not found after add-task")
	}
	if task.Status() != model.StatusPending {
		t.Errorf("status: got %q, want pending", task.Status())
	}
	// The known assignee was applied; the unknown one was skipped.
	if got := task.AssignedTo(); len(got) != 1 || got[0] != 1 {
		t.Errorf("assigned_to: got %v, want [1]", got)
	}

	project := st.GetProjectByTitle("CLI Tool")
	if got := project.Tasks(); len(got) != 1 || got[0] != task.ID() {
		t.Errorf("project tasks: got %v, want [%d]", got, task.ID())
	}
}

func TestCompleteAndUpdateTaskStatus(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "store.json")

	run(t, storePath, "add-user", "-name", "Alice", "-email", "alice@example.com")
	run(t, storePath, "add-project", "-user", "Alice", "-title", "CLI Tool")
	run(t, storePath, "add-task", "-project", "CLI Tool", "-title", "Write tests")

	run(t, storePath, "complete-task", "-id", "1")
	if got := openStore(storePath).GetTaskByID(1).Status(); got != model.StatusCompleted {
		t.Errorf("status after complete-task: got %q, want completed", got)
	}

	run(t, storePath, "update-task-status", "-id", "1", "-status", "in_progress")
	if got := openStore(storePath).GetTaskByID(1).Status(); got != model.StatusInProgress {
		t.Errorf("status after update-task-status: got %q, want in_progress", got)
	}

	// A bogus status is rejected by the setter and reported; the stored
	// value is untouched.
	run(t, storePath, "update-task-status", "-id", "1", "-status", "bogus")
	if got := openStore(storePath).GetTaskByID(1).Status(); got != model.StatusInProgress {
		t.Errorf("status after bogus update: got %q, want in_progress", got)
	}

	// Unknown IDs are reported, not fatal.
	run(t, storePath, "complete-task", "-id", "99")
}

func TestDeleteTaskCommand(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "store.json")

	run(t, storePath, "add-user", "-name", "Alice", "-email", "alice@example.com")
	run(t, storePath, "add-project", "-user", "Alice", "-title", "CLI Tool")
	run(t, storePath, "add-task", "-project", "CLI Tool", "-title", "Doomed")

	run(t, storePath, "delete-task", "-id", "1")

	st := openStore(storePath)
	if st.GetTaskByID(1) != nil {
		t.Error("task still present after delete-task")
	}
	project := st.GetProjectByTitle("CLI Tool")
	if got := project.Tasks(); len(got) != 0 {
		t.Errorf("project tasks after delete: got %v, want empty", got)
	}

	// Deleting again is a reported miss, not an error.
	run(t, storePath, "delete-task", "-id", "1")
}

func TestListCommandsDoNotFail(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "store.json")

	run(t, storePath, "list-users")
	run(t, storePath, "list-tasks")
	run(t, storePath, "list-projects")

	run(t, storePath, "add-user", "-name", "Alice", "-email", "alice@example.com")
	run(t, storePath, "add-project", "-user", "Alice", "-title", "CLI Tool")
	run(t, storePath, "add-task", "-project", "CLI Tool", "-title", "Write tests")

	run(t, storePath, "list-users")
	run(t, storePath, "list-projects", "-user", "Alice")
	run(t, storePath, "list-tasks", "-project", "CLI Tool")
}
