package md2html

import (
	"time"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Engine names.
const (
	EngineNative   = pipeline.EngineNative
	EngineGoldmark = pipeline.EngineGoldmark
)

// Template placeholders.
const (
	TitlePlaceholder   = pipeline.TitlePlaceholder
	ContentPlaceholder = pipeline.ContentPlaceholder
)

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	CSS      string // Extra CSS appended after the converter style (optional)
}

// ConvertResult holds the outputs of one conversion.
type ConvertResult struct {
	Title       string // front matter title, else first level-1 heading
	Description string // front matter description
	Draft       bool   // front matter draft flag
	Content     string // rendered body, no template
	HTML        string // filled and styled page
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	engine        string
	templateText  string
	templateName  string
	styleInput    string
	resolvedStyle string
	styleURL      string
	assetPath     string
	rewriteLinks  bool
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the Markdown engine: EngineNative (default) or
// EngineGoldmark. NewConverter returns ErrUnknownEngine for other names.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithTemplate sets the page template text. It must contain
// {{ Content }}; {{ Title }} is optional.
func WithTemplate(text string) Option {
	return func(c *Converter) {
		c.cfg.templateText = text
	}
}

// WithTemplateName selects a template by name from the asset loader.
// Ignored when WithTemplate is also given.
func WithTemplateName(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithStyle sets the CSS style for conversion.
// Accepts:
//   - Name: "minimal" (uses the asset loader)
//   - File path: "./custom.css" or "/abs/path/style.css"
//   - URL: "https://example.com/site.css" (injected as a <link>)
//   - CSS content: "body { ... }" (detected by presence of "{")
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath configures a custom asset directory.
// Custom assets take precedence with fallback to embedded defaults.
// Ignored when WithAssetLoader is also given.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithMarkdownLinks enables rewriting of relative .md links to .html.
func WithMarkdownLinks(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.rewriteLinks = enabled
	}
}
