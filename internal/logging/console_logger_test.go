package logging

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/vvka-141/tabload/pkg/tabload"
)

var (
	_ tabload.Logger = (*ConsoleLogger)(nil)
	_ tabload.Logger = (*NullLogger)(nil)
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true, false)
	logger.Verbose("test message: %s", "value")

	expected := "[VERBOSE] test message: value\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false, false)
	logger.Verbose("test message: %s", "value")

	if buf.String() != "" {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *ConsoleLogger)
		want string
	}{
		{"info", func(l *ConsoleLogger) { l.Info("info message: %s", "value") }, "info message: value\n"},
		{"warn", func(l *ConsoleLogger) { l.Warn("careful: %d", 3) }, "[WARNING] careful: 3\n"},
		{"error", func(l *ConsoleLogger) { l.Error("error message: %s", "value") }, "[ERROR] error message: value\n"},
		{"no args keeps percent", func(l *ConsoleLogger) { l.Info("100%") }, "100%\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewConsoleLoggerTo(&buf, false, false))
			if buf.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestConsoleLogger_ColorKeepsMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false, true)
	logger.Warn("drift detected")

	if !strings.Contains(buf.String(), "WARNING") || !strings.HasSuffix(buf.String(), "drift detected\n") {
		t.Errorf("unexpected colored output %q", buf.String())
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true, false)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 30 {
		t.Errorf("Expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestNullLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNullLogger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Warn("warn %d", id)
			logger.Error("error %d", id)
		}(i)
	}

	wg.Wait()
}

// BenchmarkConsoleLogger_VerboseDisabled measures performance when verbose is disabled
func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewConsoleLoggerTo(&bytes.Buffer{}, false, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

// Example demonstrates NullLogger usage
func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	logger.Verbose("This too")
	logger.Error("And this")
	fmt.Println("Done")
	// Output:
	// Done
}
