package repository

import (
	"errors"
	"io/fs"
	"os"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/sandbox"
)

const EnvFile = ".env"

// FileStore reads and writes the top level files of a project directory.
type FileStore struct {
	manifest string
}

func NewFileStore(manifest string) *FileStore {
	if manifest == "" {
		manifest = DefaultManifest
	}
	return &FileStore{manifest: manifest}
}

// Files lists the regular files directly inside the project, sorted by name.
// Subdirectories and symlinks that resolve outside the project are skipped,
// so every listed name can be read back.
func (s *FileStore) Files(project domain.ProjectInfo) ([]string, error) {
	entries, err := os.ReadDir(project.Dir)
	if err != nil {
		return nil, &domain.Error{Kind: domain.ErrReadDir, Project: project.Name, Path: project.Dir, Err: err}
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		path, err := sandbox.Join(project.Dir, e.Name())
		if err != nil {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

func (s *FileStore) ReadFile(project domain.ProjectInfo, name string) (string, error) {
	path, err := s.resolve(project, name)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", domain.FileNotFound(project.Name, name)
	case err != nil:
		return "", &domain.Error{Kind: domain.ErrReadFile, Project: project.Name, File: name, Path: path, Err: err}
	case info.IsDir():
		return "", domain.FileNotFound(project.Name, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.FileNotFound(project.Name, name)
		}
		return "", &domain.Error{Kind: domain.ErrReadFile, Project: project.Name, File: name, Path: path, Err: err}
	}
	return string(data), nil
}

// WriteFile replaces the file's content, creating it when missing.
func (s *FileStore) WriteFile(project domain.ProjectInfo, name, content string) (string, error) {
	path, err := s.resolve(project, name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", &domain.Error{Kind: domain.ErrWriteFile, Project: project.Name, File: name, Path: path, Err: err}
	}
	return content, nil
}

// DeleteFile removes the file and returns what it contained.
func (s *FileStore) DeleteFile(project domain.ProjectInfo, name string) (string, error) {
	content, err := s.ReadFile(project, name)
	if err != nil {
		return "", err
	}

	path, err := s.resolve(project, name)
	if err != nil {
		return "", err
	}
	if err := os.Remove(path); err != nil {
		return "", &domain.Error{Kind: domain.ErrDeleteFile, Project: project.Name, File: name, Path: path, Err: err}
	}
	return content, nil
}

// Compose returns the project's manifest.
func (s *FileStore) Compose(project domain.ProjectInfo) (string, error) {
	return s.ReadFile(project, s.manifest)
}

// Env returns the project's environment file.
func (s *FileStore) Env(project domain.ProjectInfo) (string, error) {
	return s.ReadFile(project, EnvFile)
}

func (s *FileStore) resolve(project domain.ProjectInfo, name string) (string, error) {
	path, err := sandbox.Join(project.Dir, name)
	if err != nil {
		return "", &domain.Error{Kind: domain.ErrInvalidPath, Project: project.Name, File: name, Err: err}
	}
	return path, nil
}
