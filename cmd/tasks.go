package cmd

import (
	"flag"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/ui"
	"github.com/taskdeck/taskdeck/internal/utils"
)

func (a *app) addTaskCommand(args []string) error {
	fs := flag.NewFlagSet("taskdeck add-task", flag.ContinueOnError)
	project := fs.String("project", "", "Project title")
	title := fs.String("title", "", "Task title")
	assign := fs.String("assign", "", "Comma-separated usernames to assign")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *project == "" || *title == "" {
		return fmt.Errorf("add-task requires -project and -title")
	}

	st := a.openStore()
	proj := st.GetProjectByTitle(*project)
	if proj == nil {
		a.printer.Error("Project %q not found.", *project)
		return nil
	}

	task, err := model.NewTask(*title, proj.ID(), model.StatusPending, st.TaskIDs())
	if err != nil {
		a.printer.Error("Error creating task: %v", err)
		return nil
	}
	st.AddTask(task)

	proj.AddTask(task.ID())
	st.UpdateProject(proj)

	// Unknown assignees are skipped with a warning; the task is still
	// created and the remaining assignments still apply.
	if usernames := utils.SplitAndTrim(*assign, ","); len(usernames) > 0 {
		for _, username := range usernames {
			user := st.GetUserByName(username)
			if user == nil {
				a.printer.Warn("User %q not found. Skipping assignment.", username)
				continue
			}
			task.AssignUser(user.ID())
		}
		st.UpdateTask(task)
	}

	a.printer.Success("Task %q added successfully with ID %d to project %q.",
		task.Title(), task.ID(), proj.Title())
	return nil
}

func (a *app) listTasksCommand(args []string) error {
	fs := flag.NewFlagSet("taskdeck list-tasks", flag.ContinueOnError)
	project := fs.String("project", "", "Filter by project title")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := a.openStore()
	var tasks []*model.Task
	if *project != "" {
		proj := st.GetProjectByTitle(*project)
		if proj == nil {
			a.printer.Error("Project %q not found.", *project)
			return nil
		}
		tasks = st.GetTasksByProject(proj.ID())
		a.printer.Info("Tasks for project %q:", proj.Title())
	} else {
		tasks = st.GetTasks()
	}

	a.printer.Table(ui.RenderTasks(tasks, st.GetProjects(), st.GetUsers()))
	return nil
}

func (a *app) completeTaskCommand(args []string) error {
	fs := flag.NewFlagSet("taskdeck complete-task", flag.ContinueOnError)
	id := fs.Int("id", 0, "Task ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := a.openStore()
	task := st.GetTaskByID(*id)
	if task == nil {
		a.printer.Error("Task with ID %d not found.", *id)
		return nil
	}

	task.MarkCompleted()
	st.UpdateTask(task)
	a.printer.Success("Task %q marked as completed.", task.Title())
	return nil
}

func (a *app) updateTaskStatusCommand(args []string) error {
	fs := flag.NewFlagSet("taskdeck update-task-status", flag.ContinueOnError)
	id := fs.Int("id", 0, "Task ID")
	status := fs.String("status", "", "New status (pending|in_progress|completed)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := a.openStore()
	task := st.GetTaskByID(*id)
	if task == nil {
		a.printer.Error("Task with ID %d not found.", *id)
		return nil
	}

	if err := task.SetStatus(model.Status(*status)); err != nil {
		a.printer.Error("Error updating task: %v", err)
		return nil
	}
	st.UpdateTask(task)
	a.printer.Success("Task %q status updated to %q.", task.Title(), *status)
	return nil
}

func (a *app) deleteTaskCommand(args []string) error {
	fs := flag.NewFlagSet("taskdeck delete-task", flag.ContinueOnError)
	id := fs.Int("id", 0, "Task ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := a.openStore()
	task := st.GetTaskByID(*id)
	if task == nil {
		a.printer.Error("Task with ID %d not found.", *id)
		return nil
	}

	// Drop the project's back-reference before removing the record.
	if proj := st.GetProjectByID(task.ProjectID()); proj != nil {
		proj.RemoveTask(task.ID())
		st.UpdateProject(proj)
	}
	if st.DeleteTask(task.ID()) {
		a.printer.Success("Task %q deleted.", task.Title())
	} else {
		a.printer.Error("Task with ID %d not found.", *id)
	}
	return nil
}
