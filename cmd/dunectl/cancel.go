package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCancelCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <executionId>",
		Short: "Cancel a running execution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			res, err := client.Cancel(cmd.Context(), args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to cancel %s", args[0])
			}

			return writeJSON(cmd.OutOrStdout(), cancelView{Success: res.Success})
		},
	}
}
