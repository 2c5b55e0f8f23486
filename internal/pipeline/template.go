package pipeline

import (
	"context"
	"errors"
	"strings"
)

// Placeholders recognized in page templates.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrTemplateMissingContent indicates a template without a content placeholder.
var ErrTemplateMissingContent = errors.New("template has no " + ContentPlaceholder + " placeholder")

// TemplateFiller defines the contract for filling a page template.
type TemplateFiller interface {
	Fill(ctx context.Context, tmpl, title, content string) (string, error)
}

// TemplateInjection substitutes the title and content placeholders.
type TemplateInjection struct{}

// Fill replaces every placeholder occurrence in a single pass, so a
// placeholder appearing inside the title or content is never expanded.
// Title placeholders are optional.
func (t *TemplateInjection) Fill(ctx context.Context, tmpl, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !strings.Contains(tmpl, ContentPlaceholder) {
		return "", ErrTemplateMissingContent
	}

	r := strings.NewReplacer(
		TitlePlaceholder, title,
		ContentPlaceholder, content,
	)
	return r.Replace(tmpl), nil
}

// Compile-time interface check.
var _ TemplateFiller = (*TemplateInjection)(nil)
