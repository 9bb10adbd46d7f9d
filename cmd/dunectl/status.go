package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <executionId>",
		Short: "Show the state of an execution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			res, err := client.Status(cmd.Context(), args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to get status of %s", args[0])
			}

			return writeJSON(cmd.OutOrStdout(), newStatusView(res))
		},
	}
}
