package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds flags that shape every generated page.
type renderFlags struct {
	template     string
	engine       string
	style        string
	assetPath    string
	timeout      string
	rewriteLinks bool
	drafts       bool
}

// siteFlags holds the build command's flags.
type siteFlags struct {
	common  commonFlags
	render  renderFlags
	content string
	static  string
	output  string
	workers int
	changed func(name string) bool
}

// convertFlags holds the convert command's flags.
type convertFlags struct {
	common  commonFlags
	render  renderFlags
	output  string
	workers int
	stdout  bool
	changed func(name string) bool
}

// titleFlags holds the title command's flags.
type titleFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addRenderFlags adds page rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.template, "template", "T", "", "template file or embedded template name")
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: native, goldmark")
	fs.StringVarP(&f.style, "style", "s", "", "CSS style name, file path, URL or inline CSS")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory (styles/, templates/)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-page timeout (e.g., 10s, 1m)")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "rewrite relative .md links to .html")
	fs.BoolVar(&f.drafts, "drafts", false, "render pages marked draft: true")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, usage io.Writer) (*siteFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &siteFlags{}

	fs.StringVar(&f.content, "content", "", "markdown content directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printBuildUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.changed = fs.Changed

	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.stdout, "stdout", false, "write a single page to standard output")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.changed = fs.Changed

	return f, fs.Args(), nil
}

// parseTitleFlags parses title command flags and returns positional args.
func parseTitleFlags(args []string, usage io.Writer) (*titleFlags, []string, error) {
	fs := flag.NewFlagSet("title", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &titleFlags{}

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printTitleUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}

// usageError wraps a flag parsing error. --help is passed through so the
// caller can exit cleanly.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
