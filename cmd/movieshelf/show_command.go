package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"movieshelf/internal/api"
	"movieshelf/internal/movies"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := movies.ParseID(strings.TrimSpace(args[0]))
			if !ok {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			c, err := ctx.apiClient()
			if err != nil {
				return err
			}
			movie, err := c.Get(cmd.Context(), id)
			if errors.Is(err, movies.ErrNotFound) {
				return fmt.Errorf("movie %d not found", id)
			}
			if err != nil {
				return wrapClientError(err, c.BaseURL())
			}
			if asJSON {
				return writeJSON(cmd, api.MovieResponse{Movie: movie})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Title: %s\n", movie.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
