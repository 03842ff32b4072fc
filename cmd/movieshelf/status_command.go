package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.apiClient()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("movieshelf", colorize) {
				fmt.Fprintln(out, line)
			}
			health, err := c.Health(cmd.Context())
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Server", statusError, c.BaseURL(), colorize))
				return wrapClientError(err, c.BaseURL())
			}
			fmt.Fprintln(out, renderStatusLine("Server", statusOK, c.BaseURL(), colorize))
			fmt.Fprintln(out, renderStatusLine("Movies", statusInfo, strconv.Itoa(health.Movies), colorize))
			if ctx.configPath != "" {
				fmt.Fprintln(out, renderStatusLine("Config", statusInfo, ctx.configPath, colorize))
			}
			return nil
		},
	}
}
