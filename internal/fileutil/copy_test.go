package fileutil_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// writeTree creates files (relative path -> content) under root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

// listTree returns every file under root as slash-separated relative paths.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}

type logRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *logRecorder) logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// ---------------------------------------------------------------------------
// TestCopyStatic - Static tree replication with remapping
// ---------------------------------------------------------------------------

func TestCopyStatic(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	src := filepath.Join(base, "static")
	dst := filepath.Join(base, "public")

	writeTree(t, src, map[string]string{
		"style.css":            "body{}",
		"tolkien.png":          "png-bytes",
		"Banner.PNG":           "png-upper",
		"robots.txt":           "User-agent: *",
		"images/rivendell.png": "nested-png",
		"css/style.css":        "nested-css",
		"fonts/sub/a.woff2":    "font",
	})

	rec := &logRecorder{}
	if err := fileutil.CopyStatic(src, dst, rec.logf); err != nil {
		t.Fatalf("CopyStatic() error = %v", err)
	}

	want := []string{
		"css/style.css",
		"fonts/sub/a.woff2",
		"images/Banner.PNG",
		"images/rivendell.png",
		"images/tolkien.png",
		"index.css",
		"robots.txt",
	}

	got := listTree(t, dst)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("copied files =\n%v\nwant\n%v", got, want)
	}

	data, err := os.ReadFile(filepath.Join(dst, "index.css"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "body{}" {
		t.Errorf("index.css = %q, want root style.css content", data)
	}

	nested, err := os.ReadFile(filepath.Join(dst, "css", "style.css"))
	if err != nil {
		t.Fatal(err)
	}
	if string(nested) != "nested-css" {
		t.Errorf("css/style.css = %q, nested stylesheets keep their path", nested)
	}

	if len(rec.lines) != 7 {
		t.Errorf("logged %d lines, want 7: %v", len(rec.lines), rec.lines)
	}
	wantLine := fmt.Sprintf("Copying %s to %s", filepath.Join(src, "style.css"), filepath.Join(dst, "index.css"))
	found := false
	for _, line := range rec.lines {
		if line == wantLine {
			found = true
		}
	}
	if !found {
		t.Errorf("missing log line %q in %v", wantLine, rec.lines)
	}
}

func TestCopyStatic_CleansDestination(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	src := filepath.Join(base, "static")
	dst := filepath.Join(base, "public")
	writeTree(t, src, map[string]string{"a.txt": "a"})
	writeTree(t, dst, map[string]string{"stale.html": "old", "old/dir/x": "x"})

	if err := fileutil.CopyStatic(src, dst, nil); err != nil {
		t.Fatalf("CopyStatic() error = %v", err)
	}

	got := listTree(t, dst)
	if strings.Join(got, ",") != "a.txt" {
		t.Errorf("destination = %v, want only a.txt", got)
	}
	if !fileutil.DirExists(filepath.Join(dst, "images")) {
		t.Error("images directory should always be created")
	}
}

func TestCopyStatic_EmptySource(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	src := filepath.Join(base, "static")
	if err := os.Mkdir(src, 0o755); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(base, "public")

	if err := fileutil.CopyStatic(src, dst, nil); err != nil {
		t.Fatalf("CopyStatic() error = %v", err)
	}
	if !fileutil.DirExists(filepath.Join(dst, "images")) {
		t.Error("expected public/images to exist")
	}
	if files := listTree(t, dst); len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestCopyStatic_Errors(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	src := filepath.Join(base, "static")
	writeTree(t, src, map[string]string{"a.txt": "a"})
	file := filepath.Join(base, "file.txt")
	writeTree(t, base, map[string]string{"file.txt": "x"})

	tests := []struct {
		name    string
		src     string
		dst     string
		wantErr error
	}{
		{name: "empty source", src: "", dst: filepath.Join(base, "out"), wantErr: fileutil.ErrEmptyPath},
		{name: "empty destination", src: src, dst: "", wantErr: fileutil.ErrEmptyPath},
		{name: "destination equals source", src: src, dst: src, wantErr: fileutil.ErrUnsafeDestination},
		{name: "destination inside source", src: src, dst: filepath.Join(src, "public"), wantErr: fileutil.ErrUnsafeDestination},
		{name: "source inside destination", src: src, dst: base, wantErr: fileutil.ErrUnsafeDestination},
		{name: "source is a file", src: file, dst: filepath.Join(base, "out"), wantErr: fileutil.ErrSourceNotDirectory},
		{name: "source missing", src: filepath.Join(base, "missing"), dst: filepath.Join(base, "out"), wantErr: os.ErrNotExist},
	}

	t.Cleanup(func() {
		if !fileutil.FileExists(filepath.Join(src, "a.txt")) {
			t.Error("refused copies must leave the source untouched")
		}
	})

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.CopyStatic(tt.src, tt.dst, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CopyStatic() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
