package main

import (
	"github.com/dunequery/dunecorex"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newResultsCommand(a *app) *cobra.Command {
	var params []string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "results <queryId|executionId>",
		Short: "Fetch the results of a query or execution",
		Long: `Fetch results. A numeric id returns the latest results of that query and
accepts --param; any other id is treated as an execution id and --param is
ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 || offset < 0 {
				return errors.New("--limit and --offset must not be negative")
			}

			queryParams, err := parseParams(params)
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			res, err := client.Results(cmd.Context(), args[0], &dunecorex.ResultsOptions{
				Params: queryParams,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return errors.Wrapf(err, "failed to get results of %s", args[0])
			}

			return writeJSON(cmd.OutOrStdout(), newResultsView(res))
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "query parameter as key=value (repeatable)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of rows to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of rows to skip")

	return cmd
}
