package views

import "movieshelf/internal/movies"

// Detail is the data the detail view renders. A zero Detail is the empty state.
type Detail struct {
	Found bool
	ID    int64
	Title string
}

// DetailView looks up id in the snapshot. A miss yields the empty state.
func DetailView(list []movies.Movie, id int64) Detail {
	m, ok := movies.Find(list, id)
	if !ok {
		return Detail{}
	}
	return Detail{Found: true, ID: m.ID, Title: m.Title}
}
