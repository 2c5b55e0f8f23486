package main

import (
	"fmt"
	"os"

	md2html "github.com/alnah/go-md2html"
)

// runTitle prints the title of a markdown file.
func runTitle(args []string, env *Environment) error {
	_, positional, err := parseTitleFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: title takes exactly one file, got %d", ErrUsage, len(positional))
	}

	content, err := os.ReadFile(positional[0]) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	title, err := md2html.ExtractTitle(string(content))
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, title)
	return nil
}
