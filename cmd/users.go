package cmd

import (
	"flag"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/ui"
)

func (a *app) addUserCommand(args []string) error {
	fs := flag.NewFlagSet("taskdeck add-user", flag.ContinueOnError)
	name := fs.String("name", "", "User name")
	email := fs.String("email", "", "User email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		return fmt.Errorf("add-user requires -name and -email")
	}

	st := a.openStore()
	if existing := st.GetUserByName(*name); existing != nil {
		a.printer.Error("User with name %q already exists.", *name)
		return nil
	}

	user, err := model.NewUser(*name, *email, st.UserIDs())
	if err != nil {
		a.printer.Error("Error creating user: %v", err)
		return nil
	}
	st.AddUser(user)
	a.printer.Success("User %q added successfully with ID %d.", user.Name(), user.ID())
	return nil
}

func (a *app) listUsersCommand(args []string) error {
	fs := flag.NewFlagSet("taskdeck list-users", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := a.openStore()
	a.printer.Table(ui.RenderUsers(st.GetUsers()))
	return nil
}
