package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/markdown"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Markdown syntax errors from the native engine.
	ErrMalformedInlineMarkup = markdown.ErrMalformedInlineMarkup
	ErrMissingURL            = markdown.ErrMissingURL
	ErrNoTitleFound          = markdown.ErrNoTitleFound

	// Tree serialization errors.
	ErrEmptyLeafValue = htmlnode.ErrEmptyLeafValue
	ErrEmptyTag       = htmlnode.ErrEmptyTag

	// Pipeline errors.
	ErrHTMLConversion         = pipeline.ErrHTMLConversion
	ErrUnknownEngine          = pipeline.ErrUnknownEngine
	ErrFrontMatter            = pipeline.ErrFrontMatter
	ErrTemplateMissingContent = pipeline.ErrTemplateMissingContent

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Pool errors.
	ErrPoolClosed = errors.New("converter pool is closed")
)
