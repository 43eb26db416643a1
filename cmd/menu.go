package cmd

import (
	"fmt"
	"io"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/spf13/cobra"
)

// runMenu shows the interactive main menu until the user exits. Without a
// terminal it prints the help instead.
func runMenu(cmd *cobra.Command, _ []string) error {
	if !isInteractive() {
		return cmd.Help()
	}

	app, err := currentApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	for {
		final, err := runProgram(cli.NewMainMenu(app.Settings().Dark))
		if err != nil {
			return err
		}

		choice := final.(cli.MainMenuModel).GetChoice()

		switch choice {
		case "", cli.ActionExit:
			_, _ = fmt.Fprintln(w, "Goodbye!")
			return nil

		case cli.ActionDashboard:
			err = runDashboard(cmd, nil)

		case cli.ActionWeek:
			err = printWeek(w, weekOptions{})
			if err == nil {
				waitForEnter(w)
			}

		case cli.ActionAddClass:
			err = runClassForm(w, nil)

		case cli.ActionTodos:
			_, err = runProgram(cli.NewTodoList(app))

		case cli.ActionHistory:
			err = runHistoryTable(currentConfig().HistoryDays)

		case cli.ActionTheme:
			err = app.SetDark(!app.Settings().Dark)
		}

		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			waitForEnter(w)
		}
	}
}

func waitForEnter(w io.Writer) {
	_, _ = fmt.Fprintln(w, "\nPress Enter to continue...")
	_, _ = fmt.Fscanln(stdin)
}
