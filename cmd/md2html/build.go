package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// runBuild copies the static directory into the output directory, then
// generates one page per markdown file of the content directory.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: build takes no arguments, got %q", ErrUsage, positional[0])
	}

	s, err := loadSettings(flags.common, loadEnvConfig())
	if err != nil {
		return err
	}
	if err := s.applyRenderFlags(flags.render, flags.changed); err != nil {
		return err
	}
	setString(&s.cfg.Site.ContentDir, flags.content)
	setString(&s.cfg.Site.StaticDir, flags.static)
	setString(&s.cfg.Site.OutputDir, flags.output)
	if flags.changed("workers") {
		s.cfg.Build.Workers = flags.workers
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	start := env.Now()
	logf := syncLogf(!flags.common.quiet, env)
	site := s.cfg.Site

	if err := copyStatic(site.StaticDir, site.OutputDir, logf, env); err != nil {
		return err
	}

	pages, err := discoverPages(site.ContentDir, site.OutputDir)
	if err != nil {
		return err
	}

	opts, label, err := s.converterOptions(env.Stderr)
	if err != nil {
		return err
	}
	pool, closePool, err := newPool(s.cfg.Build.Workers, opts)
	if err != nil {
		return err
	}
	defer func() { _ = closePool() }()

	results := generatePages(ctx, pool, pages, batchOptions{
		drafts:   s.cfg.Render.Drafts,
		template: label,
		logf:     logf,
	})
	if err := printResults(results, flags.common.quiet, flags.common.verbose, env); err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Built %s in %v\n", site.OutputDir, env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// copyStatic replaces the output directory with the static tree. A missing
// static directory only produces a warning and an empty output directory.
func copyStatic(static, output string, logf fileutil.Logf, env *Environment) error {
	err := fileutil.CopyStatic(static, output, logf)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) || fileutil.DirExists(static) {
		return fmt.Errorf("copying static files: %w", err)
	}

	fmt.Fprintf(env.Stderr, "warning: static directory %s not found, skipping copy\n", static)
	if err := os.RemoveAll(output); err != nil {
		return fmt.Errorf("cleaning %s: %w", output, err)
	}
	if err := os.MkdirAll(output, fileutil.DefaultDirPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	return nil
}
