package domain

// ProjectRepository owns the set of project directories.
type ProjectRepository interface {
	List() ([]ProjectInfo, error)
	Get(name string) (ProjectInfo, error)
	Create(name string) (ProjectInfo, error)
	Delete(project ProjectInfo) error
}

// FileStore reads and mutates the regular files directly inside a project.
type FileStore interface {
	Files(project ProjectInfo) ([]string, error)
	ReadFile(project ProjectInfo, name string) (string, error)
	WriteFile(project ProjectInfo, name, content string) (string, error)
	DeleteFile(project ProjectInfo, name string) (string, error)
}
