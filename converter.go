package md2html

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/markdown"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Converter orchestrates the markdown-to-HTML conversion pipeline.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	templateFiller    pipeline.TemplateFiller
	cssInjector       *pipeline.CSSInjection
	template          string
}

// NewConverter creates a Converter with default configuration: native
// engine, embedded default template, no stylesheet.
// Returns error if the engine is unknown or an asset cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:            converterConfig{timeout: defaultTimeout},
		assetLoader:    assets.NewEmbeddedLoader(),
		preprocessor:   &pipeline.CommonMarkPreprocessor{},
		templateFiller: &pipeline.TemplateInjection{},
		cssInjector:    &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	htmlConverter, err := pipeline.NewHTMLConverter(c.cfg.engine)
	if err != nil {
		return nil, err
	}
	c.htmlConverter = htmlConverter

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs the full pipeline for one page.
// The context is used for cancellation; the converter timeout bounds it.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	fm, content, err := c.renderBody(ctx, input.Markdown)
	if err != nil {
		return nil, err
	}

	title := fm.Title
	if title == "" {
		title, err = markdown.ExtractTitle(fm.body)
		if err != nil {
			return nil, fmt.Errorf("extracting title: %w", err)
		}
	}

	page, err := c.templateFiller.Fill(ctx, c.template, title, content)
	if err != nil {
		return nil, fmt.Errorf("filling template: %w", err)
	}

	cssContent := c.cfg.resolvedStyle
	if input.CSS != "" {
		if cssContent != "" {
			cssContent += "\n"
		}
		cssContent += input.CSS
	}
	page = c.cssInjector.InjectStylesheetLink(ctx, page, c.cfg.styleURL)
	page = c.cssInjector.InjectCSS(ctx, page, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &ConvertResult{
		Title:       title,
		Description: fm.Description,
		Draft:       fm.Draft,
		Content:     content,
		HTML:        page,
	}, nil
}

// ConvertFragment renders Markdown to an HTML body fragment without
// template, title or stylesheet.
func (c *Converter) ConvertFragment(ctx context.Context, md string) (fragment string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if md == "" {
		return "", ErrEmptyMarkdown
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	_, content, err := c.renderBody(ctx, md)
	return content, err
}

// Close releases resources. The engines here hold none; Close exists so
// converters can be managed uniformly by ConverterPool.
func (c *Converter) Close() error {
	return nil
}

// pageMeta is the front matter plus the body that followed it.
type pageMeta struct {
	pipeline.FrontMatter
	body string
}

// renderBody preprocesses, splits front matter and converts the body.
func (c *Converter) renderBody(ctx context.Context, md string) (pageMeta, string, error) {
	md = c.preprocessor.PreprocessMarkdown(ctx, md)
	if ctx.Err() != nil {
		return pageMeta{}, "", ctx.Err()
	}

	fm, body, err := pipeline.SplitFrontMatter(md)
	if err != nil {
		return pageMeta{}, "", fmt.Errorf("parsing front matter: %w", err)
	}
	meta := pageMeta{FrontMatter: fm, body: body}

	content, err := c.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		return pageMeta{}, "", fmt.Errorf("converting to HTML: %w", err)
	}

	if c.cfg.rewriteLinks {
		content, err = pipeline.RewriteMarkdownLinks(content)
		if err != nil {
			return pageMeta{}, "", fmt.Errorf("rewriting links: %w", err)
		}
	}

	return meta, content, nil
}

// resolveStyle resolves the style input (name, path, URL, or CSS content).
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	if fileutil.IsURL(input) {
		c.cfg.styleURL = input
		return nil
	}

	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// resolveTemplate picks raw template text, a named template, or the
// embedded default, and checks it has a content placeholder.
func (c *Converter) resolveTemplate() error {
	if c.cfg.templateText != "" {
		c.template = c.cfg.templateText
	} else {
		name := c.cfg.templateName
		if name == "" {
			name = assets.DefaultTemplateName
		}
		tmpl, err := c.assetLoader.LoadTemplate(name)
		if err != nil {
			return fmt.Errorf("loading template %q: %w", name, convertAssetError(err))
		}
		c.template = tmpl
	}

	if !strings.Contains(c.template, ContentPlaceholder) {
		return ErrTemplateMissingContent
	}
	return nil
}
