package main

import (
	"context"
	"fmt"
	"os"

	md2html "github.com/alnah/go-md2html"
)

// runConvert converts one markdown file, or every markdown file of a
// directory, without touching static files.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: convert takes exactly one input, got %d", ErrUsage, len(positional))
	}
	if flags.stdout && flags.output != "" {
		return fmt.Errorf("%w: --stdout and --output are mutually exclusive", ErrUsage)
	}

	s, err := loadSettings(flags.common, loadEnvConfig())
	if err != nil {
		return err
	}
	if err := s.applyRenderFlags(flags.render, flags.changed); err != nil {
		return err
	}
	if flags.changed("workers") {
		s.cfg.Build.Workers = flags.workers
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	pages, err := discoverPages(positional[0], flags.output)
	if err != nil {
		return err
	}

	opts, label, err := s.converterOptions(env.Stderr)
	if err != nil {
		return err
	}

	if flags.stdout {
		if len(pages) != 1 {
			return fmt.Errorf("%w: --stdout needs a single file, found %d pages", ErrUsage, len(pages))
		}
		return convertToStdout(ctx, pages[0], opts, flags.common.verbose, env)
	}

	pool, closePool, err := newPool(s.cfg.Build.Workers, opts)
	if err != nil {
		return err
	}
	defer func() { _ = closePool() }()

	results := generatePages(ctx, pool, pages, batchOptions{
		drafts:   s.cfg.Render.Drafts,
		template: label,
		logf:     syncLogf(flags.common.verbose, env),
	})
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// convertToStdout renders a single page to standard output. Drafts are
// written too since nothing lands on disk.
func convertToStdout(ctx context.Context, p Page, opts []md2html.Option, verbose bool, env *Environment) error {
	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	conv, err := md2html.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = conv.Close() }()

	result, err := conv.Convert(ctx, md2html.Input{Markdown: string(content)})
	if err != nil {
		return err
	}

	if verbose && env.IsTerminal(env.Stdout) {
		fmt.Fprintf(env.Stderr, "warning: writing HTML of %q to a terminal\n", result.Title)
	}
	_, err = fmt.Fprint(env.Stdout, result.HTML)
	return err
}
