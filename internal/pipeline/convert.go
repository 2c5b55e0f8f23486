package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/alnah/go-md2html/internal/markdown"
)

// Engine names accepted by NewHTMLConverter.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

var (
	// ErrHTMLConversion indicates HTML conversion failed.
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// ErrUnknownEngine indicates an unsupported engine name.
	ErrUnknownEngine = errors.New("unknown markdown engine")
)

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NewHTMLConverter returns the converter registered under engine.
// An empty name selects the native engine.
func NewHTMLConverter(engine string) (HTMLConverter, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineNative:
		return &NativeConverter{}, nil
	case EngineGoldmark:
		return NewGoldmarkConverter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (expected %s or %s)", ErrUnknownEngine, engine, EngineNative, EngineGoldmark)
	}
}

// NativeConverter renders with the built-in block and inline parser.
// Output is a single <div> holding one element per block.
type NativeConverter struct{}

// ToHTML converts Markdown to an HTML fragment. Both ErrHTMLConversion and
// the underlying markdown error match with errors.Is.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := markdown.ToHTML(content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}
	return out, nil
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment wrapped in a <div>,
// matching the native engine's outer shape.
// Goldmark has no context support, so conversion runs in a goroutine.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		buf.WriteString("<div>")
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		buf.WriteString("</div>")
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*NativeConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)
