package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// ErrFrontMatter indicates a malformed or unterminated front matter block.
var ErrFrontMatter = errors.New("invalid front matter")

const frontMatterDelimiter = "---"

// FrontMatter is the optional YAML header of a page.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Draft       bool   `yaml:"draft"`
}

// FrontMatterKeys lists the accepted front matter keys.
var FrontMatterKeys = []string{"title", "description", "draft"}

// SplitFrontMatter separates a leading "---" delimited YAML block from the
// page body. Content without a block is returned unchanged with a zero
// FrontMatter. Unknown keys are rejected. Expects LF line endings.
func SplitFrontMatter(content string) (FrontMatter, string, error) {
	var fm FrontMatter

	rest, ok := cutDelimiterLine(content)
	if !ok {
		return fm, content, nil
	}

	block, body, found := findClosingDelimiter(rest)
	if !found {
		return fm, "", fmt.Errorf("%w: missing closing %q", ErrFrontMatter, frontMatterDelimiter)
	}

	if strings.TrimSpace(block) != "" {
		if err := yamlutil.UnmarshalStrict([]byte(block), &fm); err != nil {
			return FrontMatter{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
		}
	}

	fm.Title = strings.TrimSpace(fm.Title)
	return fm, body, nil
}

// cutDelimiterLine strips a first line consisting of the delimiter only.
func cutDelimiterLine(content string) (string, bool) {
	first, rest, _ := strings.Cut(content, "\n")
	if strings.TrimRight(first, " \t") != frontMatterDelimiter {
		return "", false
	}
	return rest, true
}

// findClosingDelimiter returns the text before the first delimiter line and
// the text after it.
func findClosingDelimiter(rest string) (block, body string, found bool) {
	offset := 0
	for offset <= len(rest) {
		line, after, more := strings.Cut(rest[offset:], "\n")
		if strings.TrimRight(line, " \t") == frontMatterDelimiter {
			return rest[:offset], after, true
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}
	return "", "", false
}
