package executor

import (
	"context"
	"strings"
	"sync"
)

// MockExecutor implements Executor for testing.
type MockExecutor struct {
	mu sync.Mutex

	// Commands records all executed commands for verification.
	Commands []Command

	// Responses maps command lines to responses. The full line is tried
	// first, then ever shorter prefixes down to the bare program name.
	// Key format: "docker compose ls -q"
	Responses map[string]MockResponse

	// DefaultResponse is used when no matching response is found.
	DefaultResponse MockResponse
}

// MockResponse defines the response for a command.
type MockResponse struct {
	Result Result
	Err    error
}

func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:  make([]Command, 0),
		Responses: make(map[string]MockResponse),
	}
}

// AddResponse registers output and exit code for a command line.
func (m *MockExecutor) AddResponse(line, output string, exitCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[line] = MockResponse{Result: Result{Stdout: output, Combined: output, ExitCode: exitCode}}
}

// AddError makes a command line fail to spawn with err.
func (m *MockExecutor) AddError(line string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[line] = MockResponse{Err: err}
}

func (m *MockExecutor) Run(ctx context.Context, c Command) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Commands = append(m.Commands, Command{Name: c.Name, Args: append([]string(nil), c.Args...), Dir: c.Dir})

	if err := ctx.Err(); err != nil {
		return Result{ExitCode: -1}, err
	}

	words := append([]string{c.Name}, c.Args...)
	for n := len(words); n > 0; n-- {
		if resp, ok := m.Responses[strings.Join(words[:n], " ")]; ok {
			return resp.Result, resp.Err
		}
	}
	return m.DefaultResponse.Result, m.DefaultResponse.Err
}

// LastCommand returns the most recently executed command.
func (m *MockExecutor) LastCommand() (Command, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return Command{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}

// Lines returns every executed command as a space joined line.
func (m *MockExecutor) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.Commands))
	for _, c := range m.Commands {
		out = append(out, strings.Join(append([]string{c.Name}, c.Args...), " "))
	}
	return out
}

// Reset clears recorded commands.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = m.Commands[:0]
}
