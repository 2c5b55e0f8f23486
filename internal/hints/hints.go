// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForMalformedMarkup returns a hint for unterminated inline delimiters.
func ForMalformedMarkup() string {
	return format("close every **, _ and ` on the same block, or use --engine goldmark")
}

// ForMissingTitle returns a hint for pages without a level-1 heading.
func ForMissingTitle() string {
	return format("start the page with a '# Title' line or set title: in front matter")
}

// ForMissingContentPlaceholder returns a hint for templates lacking {{ Content }}.
func ForMissingContentPlaceholder() string {
	return format("add {{ Content }} where the page body should go")
}

// ForFrontMatter returns a hint for front matter decoding errors.
func ForFrontMatter(allowed []string) string {
	if len(allowed) == 0 {
		return format("front matter must be a YAML mapping between --- lines")
	}
	return format("front matter keys: " + strings.Join(allowed, ", "))
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeOutput returns a hint when the output directory overlaps the static directory.
func ForUnsafeOutput() string {
	return format("use an output directory outside static/, e.g. --output public")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	return forAvailable(available)
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound(available []string) string {
	return forAvailable(available)
}

func forAvailable(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
