package app

// Route is a path the server renders the UI for.
type Route struct {
	Path  string
	Title string
}

// Title is the document title of every page.
const Title = "chatapp"

// Routes lists the UI routes. Every route renders the same root component.
func Routes() []Route {
	return []Route{
		{Path: "/", Title: Title},
	}
}
