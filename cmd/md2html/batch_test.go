package main

// Notes:
// - generatePages: we test ordering, draft skipping, read/convert/write
//   failures and pool acquisition errors with mock converters.
// - printResults: we test the summary line, FAILED lines with hints and
//   the ErrPagesFailed wrapping for single and multiple pages.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	md2html "github.com/alnah/go-md2html"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

// echoConverter wraps the markdown in a fixed page and honors a draft marker.
type echoConverter struct {
	err error
}

func (c *echoConverter) Convert(_ context.Context, input md2html.Input) (*md2html.ConvertResult, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &md2html.ConvertResult{
		Title: "T",
		Draft: strings.Contains(input.Markdown, "DRAFT"),
		HTML:  "<html>" + input.Markdown + "</html>",
	}, nil
}

// mockPool hands out the same converter to every worker.
type mockPool struct {
	conv       PageConverter
	size       int
	acquireErr error

	mu       sync.Mutex
	released int
}

func (p *mockPool) Acquire() (PageConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *mockPool) Release(PageConverter) {
	p.mu.Lock()
	p.released++
	p.mu.Unlock()
}

func (p *mockPool) Size() int { return p.size }

func testBatchOptions() batchOptions {
	return batchOptions{template: "test template", logf: func(string, ...any) {}}
}

// ---------------------------------------------------------------------------
// TestGeneratePages - concurrent page generation
// ---------------------------------------------------------------------------

func TestGeneratePages(t *testing.T) {
	t.Parallel()

	t.Run("writes pages in order", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		var pages []Page
		for _, name := range []string{"a", "b", "c", "d"} {
			src := filepath.Join(dir, "content", name+".md")
			mustWriteFile(t, src, name)
			pages = append(pages, Page{InputPath: src, OutputPath: filepath.Join(dir, "public", "sub", name+".html")})
		}
		pool := &mockPool{conv: &echoConverter{}, size: 2}

		results := generatePages(context.Background(), pool, pages, testBatchOptions())

		if len(results) != len(pages) {
			t.Fatalf("got %d results, want %d", len(results), len(pages))
		}
		for i, r := range results {
			if r.Err != nil {
				t.Fatalf("page %d: %v", i, r.Err)
			}
			if r.InputPath != pages[i].InputPath {
				t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, pages[i].InputPath)
			}
			got, err := os.ReadFile(r.OutputPath)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != "<html>"+[]string{"a", "b", "c", "d"}[i]+"</html>" {
				t.Errorf("page %d = %q", i, got)
			}
		}
		if pool.released != 2 {
			t.Errorf("released = %d, want 2", pool.released)
		}
	})

	t.Run("drafts skipped unless enabled", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		src := filepath.Join(dir, "wip.md")
		mustWriteFile(t, src, "DRAFT")
		page := Page{InputPath: src, OutputPath: filepath.Join(dir, "wip.html")}
		pool := &mockPool{conv: &echoConverter{}, size: 1}

		results := generatePages(context.Background(), pool, []Page{page}, testBatchOptions())
		if !results[0].Skipped {
			t.Error("expected draft to be skipped")
		}
		if _, err := os.Stat(page.OutputPath); !errors.Is(err, os.ErrNotExist) {
			t.Error("draft output should not exist")
		}

		opts := testBatchOptions()
		opts.drafts = true
		results = generatePages(context.Background(), pool, []Page{page}, opts)
		if results[0].Skipped || results[0].Err != nil {
			t.Errorf("result = %+v, want written", results[0])
		}
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		page := Page{InputPath: filepath.Join(dir, "gone.md"), OutputPath: filepath.Join(dir, "gone.html")}
		pool := &mockPool{conv: &echoConverter{}, size: 1}

		results := generatePages(context.Background(), pool, []Page{page}, testBatchOptions())
		if !errors.Is(results[0].Err, ErrReadMarkdown) {
			t.Errorf("error = %v, want ErrReadMarkdown", results[0].Err)
		}
	})

	t.Run("conversion error", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		src := filepath.Join(dir, "bad.md")
		mustWriteFile(t, src, "**open")
		pool := &mockPool{conv: &echoConverter{err: md2html.ErrMalformedInlineMarkup}, size: 1}

		results := generatePages(context.Background(), pool, []Page{{InputPath: src, OutputPath: filepath.Join(dir, "bad.html")}}, testBatchOptions())
		if !errors.Is(results[0].Err, md2html.ErrMalformedInlineMarkup) {
			t.Errorf("error = %v, want ErrMalformedInlineMarkup", results[0].Err)
		}
	})

	t.Run("acquire failure fails every page", func(t *testing.T) {
		t.Parallel()
		pages := []Page{{InputPath: "a.md"}, {InputPath: "b.md"}}
		pool := &mockPool{acquireErr: md2html.ErrPoolClosed, size: 2}

		for _, r := range generatePages(context.Background(), pool, pages, testBatchOptions()) {
			if !errors.Is(r.Err, md2html.ErrPoolClosed) {
				t.Errorf("%s: error = %v, want ErrPoolClosed", r.InputPath, r.Err)
			}
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		pool := &mockPool{conv: &echoConverter{}, size: 1}

		results := generatePages(ctx, pool, []Page{{InputPath: "a.md"}}, testBatchOptions())
		if !errors.Is(results[0].Err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", results[0].Err)
		}
	})

	t.Run("no pages", func(t *testing.T) {
		t.Parallel()
		if got := generatePages(context.Background(), &mockPool{size: 1}, nil, testBatchOptions()); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrintResults - summary and failures
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	t.Run("all succeeded", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		env := &Environment{Stdout: &stdout, Stderr: &stderr}

		err := printResults([]PageResult{{InputPath: "a.md", Bytes: 10}, {InputPath: "b.md", Skipped: true}}, false, false, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "1 succeeded, 0 failed, 1 drafts skipped") {
			t.Errorf("summary = %q", stdout.String())
		}
		if stderr.Len() != 0 {
			t.Errorf("unexpected stderr: %q", stderr.String())
		}
	})

	t.Run("verbose shows sizes", func(t *testing.T) {
		t.Parallel()
		var stdout bytes.Buffer
		env := &Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}}

		_ = printResults([]PageResult{{InputPath: "a.md", OutputPath: "a.html", Bytes: 2048}}, false, true, env)
		out := stdout.String()
		if !strings.Contains(out, "a.md -> a.html") {
			t.Errorf("missing page line: %q", out)
		}
		if !strings.Contains(out, "2.0 kB") {
			t.Errorf("missing humanized size: %q", out)
		}
	})

	t.Run("single failure keeps cause", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer
		env := &Environment{Stdout: &bytes.Buffer{}, Stderr: &stderr}

		err := printResults([]PageResult{{InputPath: "a.md", Err: md2html.ErrNoTitleFound}}, false, false, env)
		if !errors.Is(err, ErrPagesFailed) || !errors.Is(err, md2html.ErrNoTitleFound) {
			t.Errorf("error = %v, want ErrPagesFailed wrapping ErrNoTitleFound", err)
		}
		if !strings.Contains(stderr.String(), "FAILED a.md") || !strings.Contains(stderr.String(), "hint:") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("quiet prints failures only", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		env := &Environment{Stdout: &stdout, Stderr: &stderr}

		err := printResults([]PageResult{
			{InputPath: "a.md"},
			{InputPath: "b.md", Err: errors.New("boom")},
			{InputPath: "c.md", Err: errors.New("boom")},
		}, true, false, env)
		if !errors.Is(err, ErrPagesFailed) {
			t.Errorf("error = %v, want ErrPagesFailed", err)
		}
		if stdout.Len() != 0 {
			t.Errorf("quiet stdout = %q", stdout.String())
		}
		if strings.Count(stderr.String(), "FAILED") != 2 {
			t.Errorf("stderr = %q", stderr.String())
		}
	})
}
