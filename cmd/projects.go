package cmd

import (
	"flag"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/ui"
)

func (a *app) addProjectCommand(args []string) error {
	fs := flag.NewFlagSet("taskdeck add-project", flag.ContinueOnError)
	user := fs.String("user", "", "Owner username")
	title := fs.String("title", "", "Project title")
	description := fs.String("description", "", "Project description")
	dueDate := fs.String("due-date", "", "Due date (e.g. 2026-12-31)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" || *title == "" {
		return fmt.Errorf("add-project requires -user and -title")
	}

	st := a.openStore()
	owner := st.GetUserByName(*user)
	if owner == nil {
		a.printer.Error("User %q not found.", *user)
		return nil
	}
	if existing := st.GetProjectByTitle(*title); existing != nil {
		a.printer.Error("Project with title %q already exists.", *title)
		return nil
	}

	project, err := model.NewProject(*title, *description, owner.ID(), *dueDate, st.ProjectIDs())
	if err != nil {
		a.printer.Error("Error creating project: %v", err)
		return nil
	}
	st.AddProject(project)

	// Keep the owner's back-reference list in sync.
	owner.AddProject(project.ID())
	st.UpdateUser(owner)

	a.printer.Success("Project %q added successfully with ID %d for user %q.",
		project.Title(), project.ID(), owner.Name())
	return nil
}

func (a *app) listProjectsCommand(args []string) error {
	fs := flag.NewFlagSet("taskdeck list-projects", flag.ContinueOnError)
	user := fs.String("user", "", "Filter by username")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := a.openStore()
	var projects []*model.Project
	if *user != "" {
		owner := st.GetUserByName(*user)
		if owner == nil {
			a.printer.Error("User %q not found.", *user)
			return nil
		}
		projects = st.GetProjectsByOwner(owner.ID())
		a.printer.Info("Projects for user %q:", owner.Name())
	} else {
		projects = st.GetProjects()
	}

	a.printer.Table(ui.RenderProjects(projects, st.GetUsers()))
	return nil
}
