package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"movieshelf/internal/routes"
)

type routeOutput struct {
	Path    string `json:"path"`
	State   string `json:"state"`
	MovieID int64  `json:"movieId,omitempty"`
	Matched bool   `json:"matched"`
}

func newRouteCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "route <path>",
		Short:       "Show which view a path selects",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := routes.Resolve(args[0])
			payload := routeOutput{
				Path:    args[0],
				State:   sel.State.String(),
				MovieID: sel.MovieID,
				Matched: sel.Matched(),
			}
			if asJSON {
				return writeJSON(cmd, payload)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Path:    %s\n", payload.Path)
			fmt.Fprintf(out, "State:   %s\n", payload.State)
			if sel.State == routes.ListWithDetail {
				fmt.Fprintf(out, "Movie:   %d\n", payload.MovieID)
			}
			fmt.Fprintf(out, "Matched: %s\n", yesNo(payload.Matched))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
