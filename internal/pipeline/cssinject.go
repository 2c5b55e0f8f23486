package pipeline

import (
	"context"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}
	if ctx.Err() != nil {
		return htmlContent
	}

	return insertInHead(htmlContent, "<style>"+sanitizeCSS(cssContent)+"</style>")
}

// InjectStylesheetLink inserts a <link rel="stylesheet"> for href using the
// same placement rules as InjectCSS.
func (s *CSSInjection) InjectStylesheetLink(ctx context.Context, htmlContent, href string) string {
	if href == "" || ctx.Err() != nil {
		return htmlContent
	}

	href = strings.ReplaceAll(href, `"`, "%22")
	return insertInHead(htmlContent, `<link rel="stylesheet" href="`+href+`">`)
}

func insertInHead(htmlContent, block string) string {
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + block + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + block + htmlContent[insertPos:]
		}
	}

	return block + htmlContent
}

// sanitizeCSS escapes </ so the stylesheet cannot close its <style> tag.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Compile-time interface check.
var _ CSSInjector = (*CSSInjection)(nil)
