package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BlockKind classifies a block of markdown.
type BlockKind uint8

const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

var blockKindNames = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	CodeBlock:     "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return fmt.Sprintf("BlockKind(%d)", k)
}

const (
	blockSeparator  = "\n\n"
	codeFence       = "```"
	quotePrefix     = ">"
	unorderedPrefix = "- "
)

// headingPattern matches 1 to 6 '#' followed by a space. Title extraction
// uses the same pattern restricted to level 1.
var headingPattern = regexp.MustCompile(`^(#{1,6}) `)

// SplitBlocks splits a document on blank lines. Blocks are trimmed and
// empty blocks are dropped.
func SplitBlocks(document string) []string {
	parts := strings.Split(document, blockSeparator)
	blocks := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		blocks = append(blocks, p)
	}
	return blocks
}

// Classify returns the kind of a trimmed block. A block that only partly
// matches a list or quote form is a Paragraph.
func Classify(block string) BlockKind {
	lines := strings.Split(block, "\n")

	switch {
	case len(lines) == 1 && headingPattern.MatchString(lines[0]):
		return Heading
	case len(lines) >= 2 &&
		strings.HasPrefix(lines[0], codeFence) &&
		strings.HasPrefix(lines[len(lines)-1], codeFence):
		return CodeBlock
	case allHavePrefix(lines, quotePrefix):
		return Quote
	case allHavePrefix(lines, unorderedPrefix):
		return UnorderedList
	case isOrderedList(lines):
		return OrderedList
	default:
		return Paragraph
	}
}

// HeadingLevel returns the level of a heading block, or 0 if the block is
// not a heading.
func HeadingLevel(block string) int {
	if strings.Contains(block, "\n") {
		return 0
	}
	m := headingPattern.FindStringSubmatch(block)
	if m == nil {
		return 0
	}
	return len(m[1])
}

func allHavePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

// isOrderedList requires line i to start with "{i+1}. ".
func isOrderedList(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, orderedPrefix(i+1)) {
			return false
		}
	}
	return true
}

func orderedPrefix(n int) string {
	return strconv.Itoa(n) + ". "
}
