package movies

import (
	"strconv"
	"strings"
)

// Movie is a single catalogue entry.
type Movie struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// DetailPath returns the route that displays this movie.
func (m Movie) DetailPath() string {
	return "/movies/" + strconv.FormatInt(m.ID, 10)
}

// ParseID converts a path segment into a movie identifier. Only the
// canonical base-10 form of a positive integer is accepted: no sign, no
// leading zeros, no surrounding space.
func ParseID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 || strconv.FormatInt(id, 10) != raw {
		return 0, false
	}
	return id, true
}

// Find returns the movie with the given id from a snapshot.
func Find(list []Movie, id int64) (Movie, bool) {
	for _, m := range list {
		if m.ID == id {
			return m, true
		}
	}
	return Movie{}, false
}

func blank(title string) bool {
	return strings.TrimSpace(title) == ""
}
