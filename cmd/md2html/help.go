package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Copy static files and generate every page of the site")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML pages")
	fmt.Fprintln(w, "  title      Print the title of a markdown file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printRenderUsage prints the flags shared by build and convert.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -T, --template <s>        Template file or embedded template name")
	fmt.Fprintln(w, "  -e, --engine <s>          Markdown engine: native, goldmark")
	fmt.Fprintln(w, "  -s, --style <s>           CSS style name, file, URL or inline CSS")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-page timeout (e.g., 10s, 1m)")
	fmt.Fprintln(w, "      --rewrite-links       Rewrite relative .md links to .html")
	fmt.Fprintln(w, "      --drafts              Render pages marked draft: true")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Copy the static directory into the output directory, then generate")
	fmt.Fprintln(w, "one HTML page per markdown file of the content directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --content <dir>       Markdown content directory (default: content)")
	fmt.Fprintln(w, "      --static <dir>        Static files directory (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory, recreated (default: public)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printRenderUsage(w)
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML pages. No static files are copied.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "      --stdout              Write a single page to standard output")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printRenderUsage(w)
}

// printTitleUsage prints usage for the title command.
func printTitleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html title <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the front matter title, or the first '# ' heading, of a markdown file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "title":
		printTitleUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
