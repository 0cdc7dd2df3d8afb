// Package cmd implements the CLI command structure for taskdeck.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// app bundles what every command handler needs: the resolved config, a
// message printer, and the diagnostic logger handed to the store.
type app struct {
	cfg     *config.Config
	printer *ui.Printer
	logger  *log.Logger
}

func (a *app) openStore() *store.Store {
	return store.Open(a.cfg.StoreFile, a.logger)
}

// Run executes the taskdeck CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskdeck", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags (store path, log level, color) live on the same flag set.
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(fs, os.Stdout)
		return fmt.Errorf("no command given")
	}
	subcommand := remaining[0]
	remaining = remaining[1:]

	a := &app{
		cfg:     cfg,
		printer: ui.NewPrinter(os.Stdout),
		logger:  newLogger(cfg),
	}

	switch subcommand {
	case "add-user":
		return a.addUserCommand(remaining)
	case "list-users":
		return a.listUsersCommand(remaining)
	case "add-project":
		return a.addProjectCommand(remaining)
	case "list-projects":
		return a.listProjectsCommand(remaining)
	case "add-task":
		return a.addTaskCommand(remaining)
	case "list-tasks":
		return a.listTasksCommand(remaining)
	case "complete-task":
		return a.completeTaskCommand(remaining)
	case "update-task-status":
		return a.updateTaskStatusCommand(remaining)
	case "delete-task":
		return a.deleteTaskCommand(remaining)
	case "tui":
		return a.tuiCommand(ctx, remaining)
	case "version", "--version":
		return versionCommand()
	case "help", "--help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

func newLogger(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevelValue(),
		ReportTimestamp: false,
		Prefix:          "taskdeck",
	})
}

func (a *app) tuiCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskdeck tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return ui.RunBrowser(ctx, a.openStore)
}

func versionCommand() error {
	fmt.Printf("taskdeck %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Taskdeck - Track users, projects, and tasks in a single JSON file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskdeck [options] <command> [command options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add-user           Add a new user (-name, -email)")
	fmt.Fprintln(w, "  list-users         List all users")
	fmt.Fprintln(w, "  add-project        Add a new project (-user, -title, -description, -due-date)")
	fmt.Fprintln(w, "  list-projects      List projects, optionally filtered (-user)")
	fmt.Fprintln(w, "  add-task           Add a task to a project (-project, -title, -assign)")
	fmt.Fprintln(w, "  list-tasks         List tasks, optionally filtered (-project)")
	fmt.Fprintln(w, "  complete-task      Mark a task as completed (-id)")
	fmt.Fprintln(w, "  update-task-status Set a task's status (-id, -status)")
	fmt.Fprintln(w, "  delete-task        Delete a task (-id)")
	fmt.Fprintln(w, "  tui                Browse tasks interactively")
	fmt.Fprintln(w, "  version            Show version information")
	fmt.Fprintln(w, "  help               Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  taskdeck add-user -name Alex -email alex@example.com")
	fmt.Fprintln(w, "  taskdeck add-project -user Alex -title \"CLI Tool\" -due-date 2026-12-31")
	fmt.Fprintln(w, "  taskdeck add-task -project \"CLI Tool\" -title \"Write tests\" -assign Alex")
	fmt.Fprintln(w, "  taskdeck complete-task -id 1")
}
