package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// SpanKind identifies the style of an inline span.
type SpanKind uint8

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var spanKindNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

func (k SpanKind) String() string {
	if int(k) < len(spanKindNames) {
		return spanKindNames[k]
	}
	return fmt.Sprintf("SpanKind(%d)", k)
}

// Span is a run of inline text carrying one style.
// URL is set for Link and Image spans only.
type Span struct {
	Text string
	Kind SpanKind
	URL  string
}

// Inline delimiters, in the order they are applied.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "_"
	CodeDelimiter   = "`"
)

var (
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// pass rewrites the plain spans of a span list into a new list.
type pass func([]Span) ([]Span, error)

var inlinePasses = []pass{
	noError(SplitImages),
	noError(SplitLinks),
	delimiterPass(BoldDelimiter, Bold),
	delimiterPass(ItalicDelimiter, Italic),
	delimiterPass(CodeDelimiter, Code),
}

// Tokenize converts text into inline spans: images, then links, then bold,
// italic and code delimiters. Returns ErrMalformedInlineMarkup when a
// delimiter is left open.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{{Text: text, Kind: Plain}}

	var err error
	for _, p := range inlinePasses {
		spans, err = p(spans)
		if err != nil {
			return nil, err
		}
	}

	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind == Plain && s.Text == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func noError(fn func([]Span) []Span) pass {
	return func(spans []Span) ([]Span, error) {
		return fn(spans), nil
	}
}

func delimiterPass(delim string, kind SpanKind) pass {
	return func(spans []Span) ([]Span, error) {
		return SplitDelimiter(spans, delim, kind)
	}
}

// SplitDelimiter splits plain spans on delim. Segments between delimiter
// pairs get kind; empty segments are dropped. Non-plain spans pass through.
func SplitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}

		sections := strings.Split(s.Text, delim)
		if len(sections)%2 == 0 {
			return nil, fmt.Errorf("%w: unterminated %q in %q", ErrMalformedInlineMarkup, delim, s.Text)
		}

		for i, section := range sections {
			if section == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, Span{Text: section, Kind: Plain})
			} else {
				out = append(out, Span{Text: section, Kind: kind})
			}
		}
	}
	return out, nil
}

// ExtractImages returns (alt, url) pairs for every image in text.
func ExtractImages(text string) [][2]string {
	var pairs [][2]string
	for _, m := range findImages(text) {
		pairs = append(pairs, [2]string{text[m[2]:m[3]], text[m[4]:m[5]]})
	}
	return pairs
}

// ExtractLinks returns (anchor, url) pairs for every link in text.
// Images are not reported.
func ExtractLinks(text string) [][2]string {
	var pairs [][2]string
	for _, m := range findLinks(text) {
		pairs = append(pairs, [2]string{text[m[2]:m[3]], text[m[4]:m[5]]})
	}
	return pairs
}

// SplitImages splits plain spans around ![alt](url) markers.
func SplitImages(spans []Span) []Span {
	return splitMatches(spans, Image, findImages)
}

// SplitLinks splits plain spans around [anchor](url) markers that are
// not preceded by '!'.
func SplitLinks(spans []Span) []Span {
	return splitMatches(spans, Link, findLinks)
}

func findImages(text string) [][]int {
	return imagePattern.FindAllStringSubmatchIndex(text, -1)
}

// findLinks emulates a negative look-behind for '!': a candidate preceded
// by '!' is skipped and the scan resumes one byte after its start.
func findLinks(text string) [][]int {
	var matches [][]int
	pos := 0
	for pos < len(text) {
		loc := linkPattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			loc[i] += pos
		}
		if loc[0] > 0 && text[loc[0]-1] == '!' {
			pos = loc[0] + 1
			continue
		}
		matches = append(matches, loc)
		pos = loc[1]
	}
	return matches
}

func splitMatches(spans []Span, kind SpanKind, find func(string) [][]int) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}

		text := s.Text
		last := 0
		for _, m := range find(text) {
			if m[0] > last {
				out = append(out, Span{Text: text[last:m[0]], Kind: Plain})
			}
			out = append(out, Span{
				Text: text[m[2]:m[3]],
				Kind: kind,
				URL:  text[m[4]:m[5]],
			})
			last = m[1]
		}
		if last < len(text) {
			out = append(out, Span{Text: text[last:], Kind: Plain})
		}
	}
	return out
}
