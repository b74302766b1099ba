package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/sandbox"
)

const DefaultManifest = "compose.yml"

// ProjectRepository maps projects onto the immediate subdirectories of a
// base path.
type ProjectRepository struct {
	basePath string
	manifest string
}

// NewProjectRepository creates a repository rooted at basePath. New projects
// are seeded with an empty manifest file.
func NewProjectRepository(basePath, manifest string) *ProjectRepository {
	if manifest == "" {
		manifest = DefaultManifest
	}
	return &ProjectRepository{
		basePath: filepath.Clean(basePath),
		manifest: manifest,
	}
}

// BasePath returns the directory holding all projects.
func (r *ProjectRepository) BasePath() string {
	return r.basePath
}

// List returns every project directory sorted by name.
func (r *ProjectRepository) List() ([]domain.ProjectInfo, error) {
	entries, err := os.ReadDir(r.basePath)
	if err != nil {
		return nil, &domain.Error{Kind: domain.ErrReadDir, Path: r.basePath, Err: err}
	}

	projects := make([]domain.ProjectInfo, 0, len(entries))
	for _, e := range entries {
		dir := filepath.Join(r.basePath, e.Name())
		if !isDir(dir) {
			continue
		}
		projects = append(projects, domain.ProjectInfo{Name: e.Name(), Dir: dir})
	}
	return projects, nil
}

// Get resolves a project by name. Anything that is not a directory directly
// under the base path is reported as not found.
func (r *ProjectRepository) Get(name string) (domain.ProjectInfo, error) {
	if _, err := sandbox.ResolveName(name); err != nil {
		return domain.ProjectInfo{}, domain.NotFound(name)
	}

	dir := filepath.Join(r.basePath, name)
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return domain.ProjectInfo{}, domain.NotFound(name)
	case err != nil:
		return domain.ProjectInfo{}, &domain.Error{Kind: domain.ErrReadDir, Project: name, Path: dir, Err: err}
	case !info.IsDir():
		return domain.ProjectInfo{}, domain.NotFound(name)
	}

	return domain.ProjectInfo{Name: name, Dir: dir}, nil
}

// Create makes a new project directory and writes an empty manifest into it.
func (r *ProjectRepository) Create(name string) (domain.ProjectInfo, error) {
	if _, err := sandbox.ResolveName(name); err != nil {
		return domain.ProjectInfo{}, &domain.Error{Kind: domain.ErrInvalidPath, Project: name, Err: err}
	}

	dir := filepath.Join(r.basePath, name)
	if err := os.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return domain.ProjectInfo{}, &domain.Error{Kind: domain.ErrProjectAlreadyExists, Project: name}
		}
		return domain.ProjectInfo{}, &domain.Error{Kind: domain.ErrWriteFile, Project: name, Path: dir, Err: err}
	}

	manifest := filepath.Join(dir, r.manifest)
	if err := os.WriteFile(manifest, nil, 0o644); err != nil {
		_ = os.RemoveAll(dir)
		return domain.ProjectInfo{}, &domain.Error{Kind: domain.ErrWriteFile, Project: name, File: r.manifest, Path: manifest, Err: err}
	}

	return domain.ProjectInfo{Name: name, Dir: dir}, nil
}

// Delete removes the project directory and everything below it.
func (r *ProjectRepository) Delete(project domain.ProjectInfo) error {
	if project.Dir == "" || filepath.Dir(project.Dir) != r.basePath {
		return &domain.Error{Kind: domain.ErrInvalidPath, Project: project.Name}
	}

	if err := os.RemoveAll(project.Dir); err != nil {
		return &domain.Error{Kind: domain.ErrDeleteProject, Project: project.Name, Path: project.Dir, Err: err}
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
