package localcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pveldman/tasklane/localstore"
)

func newListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := app.service().List()
			shown := 0
			for _, t := range tasks {
				if status != "" && string(t.Status) != status {
					continue
				}
				printTask(cmd, t)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show tasks with this status (todo|in-progress|done)")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var (
		description string
		priority    string
		color       string
		due         string
		status      string
		subtasks    []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.service().Create(localstore.CreateInput{
				Title:       args[0],
				Description: description,
				Priority:    localstore.Priority(priority),
				ColorTag:    localstore.ColorTag(color),
				DueDate:     due,
				Status:      localstore.Status(status),
				Subtasks:    subtasks,
			})
			if err != nil {
				return err
			}
			printTask(cmd, task)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&color, "color", "", "Color tag (red|amber|green|blue|gray)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (todo|in-progress|done)")
	cmd.Flags().StringArrayVar(&subtasks, "subtask", nil, "Subtask title (repeatable)")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			done := localstore.StatusDone
			task, err := app.service().Update(args[0], localstore.Patch{Status: &done})
			if err != nil {
				return err
			}
			printTask(cmd, task)
			return nil
		},
	}
}

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service().Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}

func newSubtaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Manage a task's checklist",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <task-id> <title>",
		Short: "Add a checklist entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.service().AddSubtask(args[0], args[1])
			if err != nil {
				return err
			}
			printTask(cmd, task)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <task-id> <subtask-id>",
		Short: "Flip a checklist entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.service().ToggleSubtask(args[0], args[1])
			if err != nil {
				return err
			}
			printTask(cmd, task)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <task-id> <subtask-id>",
		Short: "Remove a checklist entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.service().RemoveSubtask(args[0], args[1])
			if err != nil {
				return err
			}
			printTask(cmd, task)
			return nil
		},
	})

	return cmd
}
