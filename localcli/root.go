// Package localcli is the command-line front end for the local, file-backed
// task list.
package localcli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pveldman/tasklane/localstore"
)

// App carries the flags shared by all subcommands.
type App struct {
	File string
}

func (a *App) service() *localstore.Service {
	return localstore.NewService(localstore.NewStorage(a.File))
}

func defaultFile() string {
	if env := strings.TrimSpace(os.Getenv("LOCAL_TASKS_FILE")); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "local-tasks.json"
	}
	return filepath.Join(home, ".local-tasks.json")
}

// NewRootCmd builds the CLI command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "localtasks",
		Short:        "Local, file-backed task list",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Add a task with two subtasks
  localtasks add "Plan sprint" --priority high --color amber --subtask "Draft goals" --subtask "Book room"

  # Show the board
  localtasks list

  # Move a task to done
  localtasks done <task-id>`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.File, "file", defaultFile(), "Path to the task list file")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newRmCmd(app))
	cmd.AddCommand(newSubtaskCmd(app))

	return cmd
}

func printTask(cmd *cobra.Command, t localstore.Task) {
	due := ""
	if t.DueDate != "" {
		due = "  due " + t.DueDate
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s] %-11s %s (%s/%s)%s\n",
		t.ID, statusMark(t.Status), t.Status, t.Title, t.Priority, t.ColorTag, due)
	for _, st := range t.Subtasks {
		mark := " "
		if st.Done {
			mark = "x"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "    %s  [%s] %s\n", st.ID, mark, st.Title)
	}
}

func statusMark(s localstore.Status) string {
	switch s {
	case localstore.StatusDone:
		return "x"
	case localstore.StatusInProgress:
		return "~"
	}
	return " "
}
