package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"movieshelf/internal/api"
	"movieshelf/internal/movies"
	"movieshelf/internal/titles"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var fromPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a movie to the collection",
		Long: "Add a movie to the collection of a running server.\n\n" +
			"The title is stored exactly as given. With --from-path the title is\n" +
			"derived from a media file name instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := resolveTitle(args, fromPath)
			if err != nil {
				return err
			}
			c, err := ctx.apiClient()
			if err != nil {
				return err
			}
			movie, err := c.Add(cmd.Context(), title)
			if err != nil {
				if errors.Is(err, movies.ErrValidation) {
					return fmt.Errorf("movie rejected: %w", err)
				}
				return wrapClientError(err, c.BaseURL())
			}
			if asJSON {
				return writeJSON(cmd, api.MovieResponse{Movie: movie})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added movie %d: %s\n", movie.ID, movie.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromPath, "from-path", "", "Derive the title from a media file name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func resolveTitle(args []string, fromPath string) (string, error) {
	fromPath = strings.TrimSpace(fromPath)
	switch {
	case fromPath != "" && len(args) > 0:
		return "", errors.New("provide a title or --from-path, not both")
	case fromPath != "":
		title, err := titles.FromPath(fromPath)
		if err != nil {
			return "", fmt.Errorf("derive title from %s: %w", fromPath, err)
		}
		return title, nil
	default:
		return strings.Join(args, " "), nil
	}
}
