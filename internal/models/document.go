package models

// Document is a single-file gist as seen by the updater.
type Document struct {
	ID       string
	Filename string
	Content  string
}
