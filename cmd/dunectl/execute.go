package main

import (
	"strconv"

	"github.com/dunequery/dunecorex"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newExecuteCommand(a *app) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "execute <queryId>",
		Short: "Submit a stored query for execution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "query id %q is not a number", args[0])
			}

			queryParams, err := parseParams(params)
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			res, err := client.Execute(cmd.Context(), queryID, &dunecorex.ExecuteOptions{
				QueryParameters: queryParams,
			})
			if err != nil {
				return errors.Wrapf(err, "failed to execute query %d", queryID)
			}

			return writeJSON(cmd.OutOrStdout(), executeView{
				ExecutionID: res.ExecutionID,
				State:       res.State.String(),
			})
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "query parameter as key=value (repeatable)")

	return cmd
}
