package markdown

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/htmlnode"
)

// RootTag is the tag of the node returned by BuildDocument.
const RootTag = "div"

// BuildDocument converts a markdown document into a tree rooted at a div,
// one child per block.
func BuildDocument(document string) (*htmlnode.Parent, error) {
	blocks := SplitBlocks(document)
	children := make([]htmlnode.Node, 0, len(blocks))

	for _, block := range blocks {
		node, err := BuildBlock(block)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}

	return htmlnode.NewParent(RootTag, children), nil
}

// BuildBlock converts one trimmed block into its HTML node.
func BuildBlock(block string) (htmlnode.Node, error) {
	switch Classify(block) {
	case Heading:
		return headingToNode(block)
	case CodeBlock:
		return codeToNode(block), nil
	case Quote:
		return quoteToNode(block)
	case UnorderedList:
		return unorderedListToNode(block)
	case OrderedList:
		return orderedListToNode(block)
	default:
		return paragraphToNode(block)
	}
}

// SpanToNode maps an inline span to its HTML node.
func SpanToNode(s Span) (htmlnode.Node, error) {
	switch s.Kind {
	case Plain:
		return htmlnode.NewText(s.Text), nil
	case Bold:
		return htmlnode.NewLeaf("b", s.Text), nil
	case Italic:
		return htmlnode.NewLeaf("i", s.Text), nil
	case Code:
		return htmlnode.NewLeaf("code", s.Text), nil
	case Link:
		if s.URL == "" {
			return nil, fmt.Errorf("%w: link %q", ErrMissingURL, s.Text)
		}
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attr{Key: "href", Value: s.URL}), nil
	case Image:
		if s.URL == "" {
			return nil, fmt.Errorf("%w: image %q", ErrMissingURL, s.Text)
		}
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: s.URL},
			htmlnode.Attr{Key: "alt", Value: s.Text},
		), nil
	default:
		return nil, fmt.Errorf("unknown span kind %v", s.Kind)
	}
}

// textToChildren tokenizes text and maps each span to a node.
func textToChildren(text string) ([]htmlnode.Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	children := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		node, err := SpanToNode(s)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return children, nil
}

func wrapInline(tag, text string) (htmlnode.Node, error) {
	children, err := textToChildren(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}

func paragraphToNode(block string) (htmlnode.Node, error) {
	return wrapInline("p", strings.ReplaceAll(block, "\n", " "))
}

func headingToNode(block string) (htmlnode.Node, error) {
	level := HeadingLevel(block)
	if level == 0 {
		return nil, fmt.Errorf("invalid heading block %q", block)
	}
	return wrapInline(fmt.Sprintf("h%d", level), block[level+1:])
}

// codeToNode keeps the fenced content literal.
func codeToNode(block string) htmlnode.Node {
	lines := strings.Split(block, "\n")
	inner := lines[1 : len(lines)-1]

	if len(inner) == 0 {
		return htmlnode.NewParent("pre", []htmlnode.Node{htmlnode.NewParent("code", nil)})
	}

	content := strings.Join(inner, "\n") + "\n"
	return htmlnode.NewParent("pre", []htmlnode.Node{htmlnode.NewLeaf("code", content)})
}

func quoteToNode(block string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	stripped := make([]string, len(lines))
	for i, line := range lines {
		line = strings.TrimPrefix(line, quotePrefix)
		stripped[i] = strings.TrimLeft(line, " \t")
	}
	return wrapInline("blockquote", strings.Join(stripped, " "))
}

func unorderedListToNode(block string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for _, line := range lines {
		text := strings.TrimSpace(strings.TrimPrefix(line, unorderedPrefix))
		item, err := wrapInline("li", text)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent("ul", items), nil
}

func orderedListToNode(block string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		item, err := wrapInline("li", strings.TrimPrefix(line, orderedPrefix(i+1)))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent("ol", items), nil
}

// ToHTML builds and renders a document in one call.
func ToHTML(document string) (string, error) {
	root, err := BuildDocument(document)
	if err != nil {
		return "", err
	}
	return htmlnode.Render(root)
}
