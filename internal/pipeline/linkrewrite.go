package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var markdownExts = []string{".md", ".markdown"}

// RewriteMarkdownLinks points relative links to Markdown sources at their
// generated pages: a[href="guide/intro.md#setup"] becomes
// a[href="guide/intro.html#setup"]. Absolute URLs, scheme links and pure
// fragments are left alone.
//
// Content without any .md reference is returned byte for byte. Otherwise
// the HTML is re-serialized by x/net/html, which escapes text nodes.
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	if !mentionsMarkdown(htmlContent) {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	if !rewriteLinks(doc) {
		return htmlContent, nil
	}
	return renderHTML(doc, isFragment)
}

func mentionsMarkdown(s string) bool {
	lower := strings.ToLower(s)
	for _, ext := range markdownExts {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

// parseHTML parses HTML content, handling both full documents and fragments.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Body context keeps the parser from adding <html><head><body>.
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the document back to string. Fragments render their
// children only.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteLinks walks the tree and reports whether any href changed.
func rewriteLinks(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if rewritten, ok := markdownToHTMLHref(attr.Val); ok {
				n.Attr[i].Val = rewritten
				changed = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteLinks(c) {
			changed = true
		}
	}
	return changed
}

// markdownToHTMLHref maps a relative .md or .markdown href to .html,
// preserving query and fragment.
func markdownToHTMLHref(href string) (string, bool) {
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return "", false
	}

	ext := path.Ext(u.Path)
	if !isMarkdownExt(ext) {
		return "", false
	}

	// Work on the raw string so percent-encoding in the path is kept.
	end := len(href)
	if i := strings.IndexAny(href, "?#"); i != -1 {
		end = i
	}
	rawPath := href[:end]
	if !strings.HasSuffix(strings.ToLower(rawPath), strings.ToLower(ext)) {
		return "", false
	}
	return rawPath[:len(rawPath)-len(ext)] + ".html" + href[end:], true
}

func isMarkdownExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range markdownExts {
		if ext == e {
			return true
		}
	}
	return false
}
