package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"movieshelf/internal/api"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List movies in collection order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.apiClient()
			if err != nil {
				return err
			}
			items, err := c.List(cmd.Context())
			if err != nil {
				return wrapClientError(err, c.BaseURL())
			}
			if asJSON {
				return writeJSON(cmd, api.MovieListResponse{Movies: items})
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No movies")
				return nil
			}
			fmt.Fprintln(out, renderMovieTable(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
