package runner

import (
	"context"
	"sync"
	"time"
)

type MockRunner struct {
	mu           sync.Mutex
	Commands     []MockCommand
	Responses    map[string]MockResponse
	ResponseFunc func(name string, args ...string) ([]byte, error)
}

type MockCommand struct {
	Name    string
	Args    []string
	Timeout time.Duration
	Mode    Mode
}

type MockResponse struct {
	Output []byte
	Error  error
}

func NewMockRunner() *MockRunner {
	return &MockRunner{
		Commands:  []MockCommand{},
		Responses: make(map[string]MockResponse),
	}
}

func (m *MockRunner) Run(
	ctx context.Context,
	timeout time.Duration,
	mode Mode,
	name string,
	args ...string,
) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Commands = append(m.Commands, MockCommand{
		Name:    name,
		Args:    args,
		Timeout: timeout,
		Mode:    mode,
	})

	key := cmdKey(name, args...)
	if resp, ok := m.Responses[key]; ok {
		return resp.Output, resp.Error
	}
	if m.ResponseFunc != nil {
		return m.ResponseFunc(name, args...)
	}
	return []byte{}, nil
}

func (m *MockRunner) AddResponse(key string, output []byte, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[key] = MockResponse{
		Output: output,
		Error:  err,
	}
}

func cmdKey(name string, args ...string) string {
	key := name
	for _, arg := range args {
		key += "|" + arg
	}
	return key
}

func (m *MockRunner) VerifyCommand(name string, args ...string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cmd := range m.Commands {
		if cmd.Name == name && argsEqual(cmd.Args, args) {
			return true
		}
	}
	return false
}

func (m *MockRunner) VerifyRunCount(name string, count int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	runCount := 0
	for _, cmd := range m.Commands {
		if cmd.Name == name {
			runCount++
		}
	}
	return runCount == count
}

func argsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MockGoEnv answers `go env <key>` with value.
func (m *MockRunner) MockGoEnv(key, value string) {
	m.AddResponse("go|env|"+key, []byte(value+"\n"), nil)
}

// MockVersion registers the output of `<tool> <args...>`, typically --version.
func (m *MockRunner) MockVersion(tool, output string, args ...string) {
	if len(args) == 0 {
		args = []string{"--version"}
	}
	m.AddResponse(cmdKey(tool, args...), []byte(output), nil)
}

// LastArgs returns the arguments of the last recorded call to name.
func (m *MockRunner) LastArgs(name string) ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.Commands) - 1; i >= 0; i-- {
		if m.Commands[i].Name == name {
			return m.Commands[i].Args, true
		}
	}
	return nil, false
}
