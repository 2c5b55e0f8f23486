package markdown

import (
	"reflect"
	"testing"
)

func TestSplitBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name: "paragraphs and list",
			input: `
This is **bolded** paragraph

This is another paragraph with _italic_ text and ` + "`code`" + ` here
This is the same paragraph on a new line

- This is a list
- with items
`,
			expected: []string{
				"This is **bolded** paragraph",
				"This is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line",
				"- This is a list\n- with items",
			},
		},
		{
			name:     "extra blank lines dropped",
			input:    "a\n\n\n\n\nb",
			expected: []string{"a", "b"},
		},
		{
			name:     "whitespace only",
			input:    "  \n\n \t \n\n",
			expected: []string{},
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "   indented\n\ntrailing   ",
			expected: []string{"indented", "trailing"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitBlocks(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitBlocks() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		block    string
		expected BlockKind
	}{
		// Headings
		{name: "h1", block: "# Heading", expected: Heading},
		{name: "h6", block: "###### H6 heading", expected: Heading},
		{name: "hash inside heading", block: "### Multiple # heading", expected: Heading},
		{name: "seven hashes", block: "####### Too many hashes", expected: Paragraph},
		{name: "no space after hash", block: "#NoSpace", expected: Paragraph},
		{name: "multi-line heading", block: "# Title\nmore", expected: Paragraph},

		// Code
		{name: "code one line", block: "```\ncode here\n```", expected: CodeBlock},
		{name: "code two lines", block: "```\nprint('hi')\nprint('bye')\n```", expected: CodeBlock},
		{name: "code with language", block: "```go\nfmt.Println()\n```", expected: CodeBlock},
		{name: "empty code", block: "```\n```", expected: CodeBlock},
		{name: "double backticks", block: "``\nnot a code block\n``", expected: Paragraph},
		{name: "single fence line", block: "```", expected: Paragraph},

		// Quotes
		{name: "quote", block: "> quoted line", expected: Quote},
		{name: "quote lines", block: "> line1\n> line2", expected: Quote},
		{name: "quote without space", block: ">tight", expected: Quote},
		{name: "partial quote", block: "> not quoted\nnot quoted", expected: Paragraph},

		// Unordered lists
		{name: "ul one item", block: "- item1", expected: UnorderedList},
		{name: "ul two items", block: "- item1\n- item2", expected: UnorderedList},
		{name: "partial ul", block: "- item1\nitem2", expected: Paragraph},
		{name: "dash without space", block: "-item", expected: Paragraph},

		// Ordered lists
		{name: "ol one", block: "1. first", expected: OrderedList},
		{name: "ol three", block: "1. first\n2. second\n3. third", expected: OrderedList},
		{name: "ol gap", block: "1. first\n3. third", expected: Paragraph},
		{name: "ol starts at zero", block: "0. zero\n1. one", expected: Paragraph},
		{name: "ol repeated number", block: "1. one\n2. two\n2. not incremented", expected: Paragraph},
		{name: "ol word number", block: "1. one\ntwo. not a number", expected: Paragraph},
		{name: "ol leading zero", block: "01. one", expected: Paragraph},
		{name: "ol starts at two", block: "2. two\n3. three", expected: Paragraph},

		// Paragraphs
		{name: "plain", block: "Just some text.", expected: Paragraph},
		{name: "multi-line paragraph", block: "This is a paragraph\nwith multiple lines.", expected: Paragraph},
		{name: "empty block", block: "", expected: Paragraph},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.block)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.block, got, tt.expected)
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	t.Parallel()

	doc := "# T\n\n> q\n> r\n\n- a\n- b\n\n1. x\n2. y\n\n```\nc\n```\n\nplain\ntext"
	for _, block := range SplitBlocks(doc) {
		first := Classify(block)
		again := SplitBlocks(block)
		if len(again) != 1 {
			t.Fatalf("re-splitting %q produced %d blocks", block, len(again))
		}
		if second := Classify(again[0]); second != first {
			t.Errorf("Classify(%q) = %v then %v", block, first, second)
		}
	}
}

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		block    string
		expected int
	}{
		{"# one", 1},
		{"### three", 3},
		{"###### six", 6},
		{"####### seven", 0},
		{"plain", 0},
		{"# a\n# b", 0},
	}

	for _, tt := range tests {
		if got := HeadingLevel(tt.block); got != tt.expected {
			t.Errorf("HeadingLevel(%q) = %d, want %d", tt.block, got, tt.expected)
		}
	}
}

func TestBlockKind_String(t *testing.T) {
	t.Parallel()

	if OrderedList.String() != "ordered_list" {
		t.Errorf("OrderedList.String() = %q", OrderedList.String())
	}
	if got := BlockKind(99).String(); got != "BlockKind(99)" {
		t.Errorf("BlockKind(99).String() = %q", got)
	}
}
