package routes

import (
	"strings"

	"movieshelf/internal/movies"
)

const (
	// Root is the application root; the movie pages live beneath it.
	Root = "/movies"
	// NewPath shows the create form.
	NewPath = Root + "/new"
)

// State identifies which views a path composes.
type State int

const (
	// Outside means the path is not under Root.
	Outside State = iota
	// ListOnly renders the list with no child view (no child route matched).
	ListOnly
	// ListWithPlaceholder renders the list and the "select a movie" prompt.
	ListWithPlaceholder
	// ListWithDetail renders the list and one movie's detail.
	ListWithDetail
	// ListWithCreate renders the list and the create form.
	ListWithCreate
)

var stateNames = map[State]string{
	Outside:             "outside",
	ListOnly:            "list",
	ListWithPlaceholder: "placeholder",
	ListWithDetail:      "detail",
	ListWithCreate:      "create",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Selection is the result of resolving a path.
type Selection struct {
	State   State
	MovieID int64 // set only for ListWithDetail
}

// Matched reports whether a child route (or the exact root) matched.
func (s Selection) Matched() bool {
	switch s.State {
	case ListWithPlaceholder, ListWithDetail, ListWithCreate:
		return true
	default:
		return false
	}
}

// Resolve maps a URL path to a Selection.
func Resolve(path string) Selection {
	if path == "" {
		path = "/"
	}
	if path != Root && !strings.HasPrefix(path, Root+"/") {
		return Selection{State: Outside}
	}

	tail := strings.TrimPrefix(path, Root)
	if tail == "" || tail == "/" {
		return Selection{State: ListWithPlaceholder}
	}
	// One trailing slash is tolerated; empty segments are not.
	rest := strings.TrimSuffix(tail[1:], "/")
	switch {
	case rest == "" || strings.Contains(rest, "/"):
		return Selection{State: ListOnly}
	case rest == "new":
		return Selection{State: ListWithCreate}
	}

	if id, ok := movies.ParseID(rest); ok {
		return Selection{State: ListWithDetail, MovieID: id}
	}
	return Selection{State: ListOnly}
}
