package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup <file>...",
		Short: "Write timestamped .bak copies of input files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.openWorkspace()
			if err != nil {
				return err
			}
			for _, name := range args {
				backupName, err := ws.BackupFile(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", name, backupName)
			}
			return nil
		},
	}
	return cmd
}
