package pipeline

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestRewriteMarkdownLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "no markdown reference returned as is",
			html: "<p>a & b</p>",
			want: "<p>a & b</p>",
		},
		{
			name: "relative md link",
			html: `<div><p><a href="guide.md">Guide</a></p></div>`,
			want: `<div><p><a href="guide.html">Guide</a></p></div>`,
		},
		{
			name: "nested path with fragment",
			html: `<a href="docs/setup.markdown#install">x</a>`,
			want: `<a href="docs/setup.html#install">x</a>`,
		},
		{
			name: "query kept",
			html: `<a href="README.MD?v=2">x</a>`,
			want: `<a href="README.html?v=2">x</a>`,
		},
		{
			name: "site rooted path",
			html: `<a href="/blog/post.md">x</a>`,
			want: `<a href="/blog/post.html">x</a>`,
		},
		{
			name: "parent directory",
			html: `<a href="../index.md">x</a>`,
			want: `<a href="../index.html">x</a>`,
		},
		{
			name: "absolute url untouched",
			html: `<a href="https://example.com/notes.md">x</a>`,
			want: `<a href="https://example.com/notes.md">x</a>`,
		},
		{
			name: "protocol relative untouched",
			html: `<a href="//example.com/notes.md">x</a>`,
			want: `<a href="//example.com/notes.md">x</a>`,
		},
		{
			name: "anchor untouched",
			html: `<a href="#notes.md">x</a>`,
			want: `<a href="#notes.md">x</a>`,
		},
		{
			name: "mailto untouched",
			html: `<a href="mailto:me@notes.md">x</a>`,
			want: `<a href="mailto:me@notes.md">x</a>`,
		},
		{
			name: "image untouched",
			html: `<img src="diagram.md" alt="d">`,
			want: `<img src="diagram.md" alt="d">`,
		},
		{
			name: "md mentioned in text only",
			html: `<p>see notes.md</p>`,
			want: `<p>see notes.md</p>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteMarkdownLinks(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RewriteMarkdownLinks() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewriteMarkdownLinks_FullDocument(t *testing.T) {
	t.Parallel()

	input := `<!DOCTYPE html><html><head><title>T</title></head><body>` +
		`<a href="a.md">A</a><a href="https://x.org/b.md">B</a></body></html>`

	got, err := RewriteMarkdownLinks(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(got))
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	var hrefs []string
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		hrefs = append(hrefs, href)
	})

	want := []string{"a.html", "https://x.org/b.md"}
	if strings.Join(hrefs, ",") != strings.Join(want, ",") {
		t.Errorf("hrefs = %v, want %v", hrefs, want)
	}
	if doc.Find("title").Text() != "T" {
		t.Errorf("title lost: %s", got)
	}
}

func TestMarkdownToHTMLHref(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href   string
		want   string
		wantOK bool
	}{
		{href: "", wantOK: false},
		{href: "page.html", wantOK: false},
		{href: "page.md", want: "page.html", wantOK: true},
		{href: "my%20page.md", want: "my%20page.html", wantOK: true},
		{href: "dir.md/file.txt", wantOK: false},
		{href: "http://h/p.md", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.href, func(t *testing.T) {
			t.Parallel()

			got, ok := markdownToHTMLHref(tt.href)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("markdownToHTMLHref(%q) = (%q, %v), want (%q, %v)", tt.href, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
