package htmlnode

import (
	"fmt"
	"strings"
)

// Render serializes n depth-first. No escaping is applied to text or
// attribute values.
func Render(n Node) (string, error) {
	var sb strings.Builder
	if err := render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func render(sb *strings.Builder, n Node) error {
	switch n := n.(type) {
	case *Leaf:
		return renderLeaf(sb, n)
	case *Parent:
		return renderParent(sb, n)
	case nil:
		return fmt.Errorf("htmlnode: nil node")
	default:
		return fmt.Errorf("htmlnode: unknown node type %T", n)
	}
}

func renderLeaf(sb *strings.Builder, l *Leaf) error {
	if l.Tag == "" {
		sb.WriteString(l.Text)
		return nil
	}

	if IsVoid(l.Tag) {
		sb.WriteByte('<')
		sb.WriteString(l.Tag)
		writeAttrs(sb, l.Attrs)
		sb.WriteByte('>')
		return nil
	}

	if l.Text == "" {
		return fmt.Errorf("%w: <%s>", ErrEmptyLeafValue, l.Tag)
	}

	openTag(sb, l.Tag, l.Attrs)
	sb.WriteString(l.Text)
	closeTag(sb, l.Tag)
	return nil
}

func renderParent(sb *strings.Builder, p *Parent) error {
	if p.Tag == "" {
		return ErrEmptyTag
	}

	openTag(sb, p.Tag, p.Attrs)
	for _, child := range p.Children {
		if err := render(sb, child); err != nil {
			return err
		}
	}
	closeTag(sb, p.Tag)
	return nil
}

func openTag(sb *strings.Builder, tag string, attrs Attrs) {
	sb.WriteByte('<')
	sb.WriteString(tag)
	writeAttrs(sb, attrs)
	sb.WriteByte('>')
}

func closeTag(sb *strings.Builder, tag string) {
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}

// AttrsToHTML renders attributes as ` key="value"` pairs in order.
func AttrsToHTML(attrs Attrs) string {
	var sb strings.Builder
	writeAttrs(&sb, attrs)
	return sb.String()
}

func writeAttrs(sb *strings.Builder, attrs Attrs) {
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
}
