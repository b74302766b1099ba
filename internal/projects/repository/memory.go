package repository

import (
	"path"
	"sort"
	"sync"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/sandbox"
)

// MemoryStore implements both ProjectRepository and FileStore in memory for
// tests of the layers above the filesystem.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]map[string]string
	manifest string

	// Error injection
	ListErr   error
	ReadErr   error
	WriteErr  error
	DeleteErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects: make(map[string]map[string]string),
		manifest: DefaultManifest,
	}
}

// AddProject registers a project with the given files.
func (m *MemoryStore) AddProject(name string, files map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	contents := make(map[string]string, len(files))
	for k, v := range files {
		contents[k] = v
	}
	m.projects[name] = contents
}

// HasProject reports whether a project is present.
func (m *MemoryStore) HasProject(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.projects[name]
	return ok
}

func (m *MemoryStore) List() ([]domain.ProjectInfo, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.ProjectInfo, 0, len(m.projects))
	for name := range m.projects {
		out = append(out, info(name))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryStore) Get(name string) (domain.ProjectInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.projects[name]; !ok {
		return domain.ProjectInfo{}, domain.NotFound(name)
	}
	return info(name), nil
}

func (m *MemoryStore) Create(name string) (domain.ProjectInfo, error) {
	if _, err := sandbox.ResolveName(name); err != nil {
		return domain.ProjectInfo{}, &domain.Error{Kind: domain.ErrInvalidPath, Project: name, Err: err}
	}
	if m.WriteErr != nil {
		return domain.ProjectInfo{}, m.WriteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[name]; ok {
		return domain.ProjectInfo{}, &domain.Error{Kind: domain.ErrProjectAlreadyExists, Project: name}
	}
	m.projects[name] = map[string]string{m.manifest: ""}
	return info(name), nil
}

func (m *MemoryStore) Delete(project domain.ProjectInfo) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.projects, project.Name)
	return nil
}

func (m *MemoryStore) Files(project domain.ProjectInfo) ([]string, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	files, ok := m.projects[project.Name]
	if !ok {
		return nil, &domain.Error{Kind: domain.ErrReadDir, Project: project.Name}
	}
	out := make([]string, 0, len(files))
	for name := range files {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryStore) ReadFile(project domain.ProjectInfo, name string) (string, error) {
	if _, err := sandbox.ResolveName(name); err != nil {
		return "", &domain.Error{Kind: domain.ErrInvalidPath, Project: project.Name, File: name, Err: err}
	}
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.projects[project.Name][name]
	if !ok {
		return "", domain.FileNotFound(project.Name, name)
	}
	return content, nil
}

func (m *MemoryStore) WriteFile(project domain.ProjectInfo, name, content string) (string, error) {
	if _, err := sandbox.ResolveName(name); err != nil {
		return "", &domain.Error{Kind: domain.ErrInvalidPath, Project: project.Name, File: name, Err: err}
	}
	if m.WriteErr != nil {
		return "", m.WriteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	files, ok := m.projects[project.Name]
	if !ok {
		return "", &domain.Error{Kind: domain.ErrWriteFile, Project: project.Name, File: name}
	}
	files[name] = content
	return content, nil
}

func (m *MemoryStore) DeleteFile(project domain.ProjectInfo, name string) (string, error) {
	content, err := m.ReadFile(project, name)
	if err != nil {
		return "", err
	}
	if m.DeleteErr != nil {
		return "", m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.projects[project.Name], name)
	return content, nil
}

func info(name string) domain.ProjectInfo {
	return domain.ProjectInfo{Name: name, Dir: path.Join("/memory", name)}
}

var (
	_ domain.ProjectRepository = (*ProjectRepository)(nil)
	_ domain.FileStore         = (*FileStore)(nil)
	_ domain.ProjectRepository = (*MemoryStore)(nil)
	_ domain.FileStore         = (*MemoryStore)(nil)
)
