package domain

// ProjectInfo identifies a project directory directly under the configured
// base path. Name is always the base name of Dir.
type ProjectInfo struct {
	Name string `json:"name"`
	Dir  string `json:"-"`
}

const (
	StatusRunning = "running"
	StatusStopped = "stopped"
)

// ProjectStatus is the listing view of a project.
type ProjectStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ProjectDetails adds the project's top level files to its status.
type ProjectDetails struct {
	Name   string   `json:"name"`
	Status string   `json:"status"`
	Files  []string `json:"files"`
}

// FileContent is returned by every single-file operation.
type FileContent struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// StatusString maps the running flag to its wire value.
func StatusString(online bool) string {
	if online {
		return StatusRunning
	}
	return StatusStopped
}
