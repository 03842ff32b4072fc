package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"movieshelf/internal/api"
)

// renderMovieTable lays out the collection in insertion order with the id
// column right aligned and a count footer.
func renderMovieTable(items []api.Movie) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"ID", "Title"})
	for _, m := range items {
		tw.AppendRow(table.Row{strconv.FormatInt(m.ID, 10), m.Title})
	}
	tw.AppendFooter(table.Row{"", countLabel(len(items))})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}

func countLabel(n int) string {
	if n == 1 {
		return "1 movie"
	}
	return strconv.Itoa(n) + " movies"
}
