package models

// Workspace is a named filesystem location. Path is kept exactly as given.
type Workspace struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}
