package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"tasktidy/internal/dashboard"
	"tasktidy/internal/format"
	"tasktidy/internal/model"
	"tasktidy/internal/store"
)

type taskView struct {
	model.Task
	CategoryName string `json:"categoryName"`
	Overdue      bool   `json:"overdue"`
}

type taskListView struct {
	Category  model.Category `json:"category"`
	Tasks     []taskView     `json:"tasks"`
	Pending   int            `json:"pending"`
	Completed int            `json:"completed"`
	Stats     store.Stats    `json:"stats"`
}

func viewTask(c *dashboard.Controller, t model.Task) taskView {
	return taskView{Task: t, CategoryName: c.CategoryName(t.Category), Overdue: c.Overdue(t)}
}

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Inspect the session's tasks",
	}

	var category string
	var empty bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks (pending first) with completion stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.newController(nil, app.cfg.UI.Seed && !empty)
			if strings.TrimSpace(category) != "" {
				c.SetActiveCategory(category)
			}
			v := c.View()

			out := taskListView{
				Category:  model.Category{ID: c.ActiveCategory(), Name: c.ActiveCategoryName()},
				Tasks:     make([]taskView, 0, len(v.Tasks)),
				Pending:   len(v.Pending),
				Completed: len(v.Completed),
				Stats:     v.Stats,
			}
			for _, t := range append(v.Pending, v.Completed...) {
				out.Tasks = append(out.Tasks, viewTask(c, t))
			}
			return writeOut(cmd, app, format.Envelope{Data: out})
		},
	}
	list.Flags().StringVar(&category, "category", store.AllTasksID, "Category id (1 = all tasks)")
	list.Flags().BoolVar(&empty, "empty", false, "Start from an empty task list instead of the demo tasks")

	show := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.newController(nil, app.cfg.UI.Seed)
			id := strings.TrimSpace(args[0])
			for _, t := range c.View().Tasks {
				if t.ID == id {
					return writeOut(cmd, app, format.Envelope{Data: viewTask(c, t)})
				}
			}
			return errNotFound("task", id)
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, format.Envelope{Data: store.DefaultRegistry().All()})
		},
	}
}
