package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vvka-141/tabload/internal/files/filesystem"
	"github.com/vvka-141/tabload/pkg/tabload"
)

func newTestScanner() (*Scanner, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/data")
	return NewScannerWithFS(fs), fs
}

func names(files []tabload.DiscoveredFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = filepath.ToSlash(f.RelativePath)
	}
	return out
}

func equalStrings(a, b []string) bool {
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

func TestNewScannerWithFS_NilFilesystem(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil filesystem")
		}
	}()
	NewScannerWithFS(nil)
}

func TestDiscover_FiltersExtensions(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("q1_sales.csv", "a\n1\n")
	fs.AddFile("Q2_SALES.CSV", "a\n2\n")
	fs.AddBytes("report.xlsx", []byte("PK"))
	fs.AddBytes("legacy.XLS", []byte{0xd0, 0xcf})
	fs.AddFile("notes.txt", "ignore me")
	fs.AddFile("data.csv.bak", "ignore me")
	fs.AddFile("README", "ignore me")

	files, err := s.Discover("/data", false)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []string{"Q2_SALES.CSV", "legacy.XLS", "q1_sales.csv", "report.xlsx"}
	if got := names(files); !equalStrings(got, want) {
		t.Fatalf("Discover = %v, want %v", got, want)
	}

	for _, f := range files {
		if f.Extension != filepath.Ext(f.Extension) || f.Extension != toLower(f.Extension) {
			t.Errorf("extension %q should be lower-case with leading dot", f.Extension)
		}
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}

func TestDiscover_NonRecursiveSkipsSubdirectories(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("top.csv", "a\n1\n")
	fs.AddFile("nested/inner.csv", "a\n2\n")
	fs.AddFile("nested/deeper/deepest.xlsx", "x")

	files, err := s.Discover("/data", false)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if got := names(files); !equalStrings(got, []string{"top.csv"}) {
		t.Errorf("non-recursive Discover = %v", got)
	}
}

func TestDiscover_Recursive(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("top.csv", "a\n1\n")
	fs.AddFile("nested/inner.csv", "a\n2\n")
	fs.AddFile("nested/deeper/deepest.xlsx", "x")
	fs.AddFile("nested/skip.json", "{}")

	files, err := s.Discover("/data", true)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []string{"nested/deeper/deepest.xlsx", "nested/inner.csv", "top.csv"}
	if got := names(files); !equalStrings(got, want) {
		t.Errorf("recursive Discover = %v, want %v", got, want)
	}
	for _, f := range files {
		if f.Name != filepath.Base(f.Path) {
			t.Errorf("Name %q does not match path %q", f.Name, f.Path)
		}
	}
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddDir("empty")

	files, err := s.Discover("/data/empty", true)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected 0 files, got %d", len(files))
	}
}

func TestDiscover_SkipsNonRegularFiles(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddSpecial("fifo.csv")
	fs.AddDir("folder.csv")
	fs.AddFile("real.csv", "a\n1\n")

	files, err := s.Discover("/data", false)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if got := names(files); !equalStrings(got, []string{"real.csv"}) {
		t.Errorf("Discover = %v, want [real.csv]", got)
	}
}

func TestDiscover_NonexistentPath(t *testing.T) {
	s, _ := newTestScanner()

	_, err := s.Discover("/nonexistent", false)
	if !errors.Is(err, tabload.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDiscover_FileRoot(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("one.csv", "a\n1\n")

	_, err := s.Discover("/data/one.csv", false)
	if !errors.Is(err, tabload.ErrInvalidPath) {
		t.Errorf("Expected ErrInvalidPath, got %v", err)
	}
}

func TestDiscover_OSFilesystemFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "target.csv")
	if err := os.WriteFile(target, []byte("a\n1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(dir, "link.csv")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	for _, recursive := range []bool{false, true} {
		files, err := NewScanner().Discover(dir, recursive)
		if err != nil {
			t.Fatalf("Discover(recursive=%v) failed: %v", recursive, err)
		}
		if len(files) != 1 || files[0].Name != "link.csv" {
			t.Errorf("Discover(recursive=%v) = %v, want the symlinked csv", recursive, names(files))
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".csv", true},
		{".xlsx", true},
		{".xls", true},
		{".xlsm", false},
		{".tsv", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSupportedExtension(tt.ext); got != tt.want {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}
