package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/spf13/cobra"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the to-do list",
	Long: `Manage the to-do list.

Without a subcommand on a terminal the interactive list opens; otherwise
the list is printed. To-dos are referenced by id or any unique id prefix.

Examples:
  studyplan todo
  studyplan todo add "Read chapter 4"
  studyplan todo done 9c1e
  studyplan todo clear`,
	Aliases: []string{"todos"},
	Args:    cobra.NoArgs,
	RunE:    runTodo,
}

func init() {
	rootCmd.AddCommand(todoCmd)
}

func runTodo(cmd *cobra.Command, _ []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	if isInteractive() {
		_, err := runProgram(cli.NewTodoList(app))
		return err
	}

	return printTodos(cmd.OutOrStdout(), app.Todos(), false)
}

// TodoListItem represents a to-do in JSON output
type TodoListItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

func printTodos(out io.Writer, todos []model.TodoItem, asJSON bool) error {
	if asJSON {
		items := make([]TodoListItem, 0, len(todos))
		for _, td := range todos {
			items = append(items, TodoListItem(td))
		}

		return printJSON(out, items)
	}

	if len(todos) == 0 {
		_, _ = fmt.Fprintln(out, "Nothing to do.")
		_, _ = fmt.Fprintln(out, "\nAdd a task with: studyplan todo add <text>")

		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	open := 0

	for _, td := range todos {
		mark := "[ ]"
		if td.Done {
			mark = "[x]"
		} else {
			open++
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", shortID(td.ID), mark, td.Text)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "\n%d open, %d done\n", open, len(todos)-open)

	return nil
}
