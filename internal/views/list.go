package views

import "movieshelf/internal/movies"

// Link is one navigable entry of the movie list.
type Link struct {
	Label  string
	Target string
}

// ListView returns one link per movie, in collection order.
func ListView(list []movies.Movie) []Link {
	links := make([]Link, 0, len(list))
	for _, m := range list {
		links = append(links, Link{Label: m.Title, Target: m.DetailPath()})
	}
	return links
}
