package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/winswitch/internal/output"
)

// listCmd is the parent command for list subcommands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows and monitors",
}

// listWindowsCmd lists the windows of the current workspace
var listWindowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List windows on the current workspace",
	Long:  `Lists the windows of the current workspace grouped by monitor, in the order focus moves through them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(context.Background())
		if err != nil {
			return err
		}
		defer s.Close()

		rows := windowRows(s.nav)
		if jsonOutput {
			return printJSON(rows)
		}

		output.PrintWindowsTable(os.Stdout, rows)
		return nil
	},
}

// listMonitorsCmd lists the configured monitors
var listMonitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List configured monitors",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(context.Background())
		if err != nil {
			return err
		}
		defer s.Close()

		rows := monitorRows(s.nav)
		if jsonOutput {
			return printJSON(rows)
		}

		output.PrintMonitorsTable(os.Stdout, rows)
		return nil
	},
}
