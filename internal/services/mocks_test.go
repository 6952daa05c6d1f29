package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vvka-141/tabload/pkg/tabload"
)

// recordingLogger captures every message by level.
type recordingLogger struct {
	mu       sync.Mutex
	verbose  []string
	info     []string
	warnings []string
	errors   []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warn(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) verboseText() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.verbose, "\n")
}

type mockDiscoverer struct {
	files []tabload.DiscoveredFile
	err   error
}

func (m *mockDiscoverer) Discover(_ string, _ bool) ([]tabload.DiscoveredFile, error) {
	return m.files, m.err
}

type mockReader struct {
	tables map[string]*tabload.Table
	errs   map[string]error
}

func (m *mockReader) Load(path string) (*tabload.Table, error) {
	if err, ok := m.errs[path]; ok {
		return nil, err
	}
	if t, ok := m.tables[path]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", tabload.ErrNotFound, path)
}
