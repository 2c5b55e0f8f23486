package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for page generation.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
	ErrPagesFailed  = errors.New("page generation failed")
)

// PageConverter is the part of md2html.Converter used by the CLI.
type PageConverter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*md2html.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (PageConverter, error)
	Release(PageConverter)
	Size() int
}

// converterPool adapts md2html.ConverterPool to Pool.
type converterPool struct {
	pool *md2html.ConverterPool
}

func (p *converterPool) Acquire() (PageConverter, error) {
	conv, err := p.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (p *converterPool) Release(conv PageConverter) {
	if c, ok := conv.(*md2html.Converter); ok {
		p.pool.Release(c)
	}
}

func (p *converterPool) Size() int {
	return p.pool.Size()
}

// newPool builds a converter pool of the resolved size.
func newPool(workers int, opts []md2html.Option) (*converterPool, func() error, error) {
	pool, err := md2html.NewConverterPool(md2html.ResolvePoolSize(workers), opts...)
	if err != nil {
		return nil, nil, err
	}
	return &converterPool{pool: pool}, pool.Close, nil
}

// batchOptions controls page generation.
type batchOptions struct {
	drafts   bool
	template string // label used in log lines
	logf     func(format string, args ...any)
}

// PageResult holds the outcome of a single page.
type PageResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Bytes      int
	Skipped    bool // draft not rendered
	Err        error
	Duration   time.Duration
}

// generatePages converts pages concurrently using the pool.
// Results are returned in input order.
func generatePages(ctx context.Context, pool Pool, pages []Page, opts batchOptions) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(pages) {
		concurrency = len(pages)
	}

	results := make([]PageResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					results[idx] = PageResult{
						InputPath:  pages[idx].InputPath,
						OutputPath: pages[idx].OutputPath,
						Err:        err,
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PageResult{
						InputPath:  pages[idx].InputPath,
						OutputPath: pages[idx].OutputPath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = generatePage(ctx, conv, pages[idx], opts)
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// generatePage reads, converts and writes one page.
func generatePage(ctx context.Context, conv PageConverter, p Page, opts batchOptions) PageResult {
	start := time.Now()
	result := PageResult{
		InputPath:  p.InputPath,
		OutputPath: p.OutputPath,
	}
	done := func(err error) PageResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	opts.logf("Generating page from %s to %s using %s", p.InputPath, p.OutputPath, opts.template)

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	page, err := conv.Convert(ctx, md2html.Input{Markdown: string(content)})
	if err != nil {
		return done(err)
	}
	result.Title = page.Title

	if page.Draft && !opts.drafts {
		result.Skipped = true
		return done(nil)
	}

	if err := os.MkdirAll(filepath.Dir(p.OutputPath), fileutil.DefaultDirPerm); err != nil {
		return done(fmt.Errorf("%w: %w", ErrWriteHTML, err))
	}
	if err := fileutil.WriteFileAtomic(p.OutputPath, []byte(page.HTML), fileutil.DefaultFilePerm); err != nil {
		return done(fmt.Errorf("%w: %w", ErrWriteHTML, err))
	}

	result.Bytes = len(page.HTML)
	return done(nil)
}

// ResultSummary tallies a batch.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Skipped   int
	Bytes     uint64
}

// countResults tallies succeeded, failed and skipped pages.
func countResults(results []PageResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
			summary.Bytes += uint64(r.Bytes) // #nosec G115 -- length is non-negative
		}
	}
	return summary
}

// printResults writes per-page failures and the batch summary.
// Returns an error wrapping ErrPagesFailed when any page failed.
func printResults(results []PageResult, quiet, verbose bool, env *Environment) error {
	summary := countResults(results)

	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err, ""))
		case quiet:
		case r.Skipped:
			if verbose {
				fmt.Fprintf(env.Stdout, "Skipped draft %s\n", r.InputPath)
			}
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n", r.InputPath, r.OutputPath,
				humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond)) // #nosec G115 -- length is non-negative
		}
	}

	if !quiet {
		line := fmt.Sprintf("%d succeeded, %d failed", summary.Succeeded, summary.Failed)
		if summary.Skipped > 0 {
			line += fmt.Sprintf(", %d drafts skipped", summary.Skipped)
		}
		if verbose {
			line += fmt.Sprintf(" (%s written)", humanize.Bytes(summary.Bytes))
		}
		fmt.Fprintln(env.Stdout, line)
	}

	switch {
	case summary.Failed == 0:
		return nil
	case len(results) == 1:
		return fmt.Errorf("%w: %w", ErrPagesFailed, results[0].Err)
	default:
		return fmt.Errorf("%w: %d of %d pages", ErrPagesFailed, summary.Failed, len(results))
	}
}

// syncLogf serializes log lines written from worker goroutines.
func syncLogf(enabled bool, env *Environment) func(format string, args ...any) {
	if !enabled {
		return func(string, ...any) {}
	}
	var mu sync.Mutex
	return func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(env.Stdout, format+"\n", args...)
	}
}
