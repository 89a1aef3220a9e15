// Package core holds the domain types shared by the notebook server and the
// terminal client: notes, tags, links, permissions and the domain error
// taxonomy that travels the wire as tagged JSON.
package core

// Note is a named markdown document stored in a notebook.
type Note struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Tag is a short colored label attachable to any number of notes. Color is
// RGB24 packed as (r<<16)|(g<<8)|b.
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color uint32 `json:"color"`
}

// NoteSummary is the projection returned by the search operations.
type NoteSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Tags []Tag  `json:"tags"`
}

// Link is a directed edge from a note to a note name. The destination is
// name-based on purpose: renaming the target orphans the link, and resolution
// happens lazily at navigation time.
type Link struct {
	From int64  `json:"from"`
	To   string `json:"to"`
}

// Permissions is the notebook access mode advertised by the server.
type Permissions string

const (
	ReadWrite Permissions = "ReadWrite"
	ReadOnly  Permissions = "ReadOnly"
)

// Writable reports whether mutating operations are allowed.
func (p Permissions) Writable() bool {
	return p != ReadOnly
}

// Info describes a served notebook.
type Info struct {
	Name        string      `json:"name"`
	Permissions Permissions `json:"permissions"`
}
