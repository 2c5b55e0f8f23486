package md2html

import (
	"context"
	"fmt"
	"slices"

	"github.com/alnah/go-md2html/internal/markdown"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// ExtractTitle returns the page title without rendering the page: the front
// matter title if present, else the text of the first "# " heading.
// Returns ErrNoTitleFound when neither exists.
func ExtractTitle(md string) (string, error) {
	md = (&pipeline.CommonMarkPreprocessor{}).PreprocessMarkdown(context.Background(), md)

	fm, body, err := pipeline.SplitFrontMatter(md)
	if err != nil {
		return "", fmt.Errorf("parsing front matter: %w", err)
	}
	if fm.Title != "" {
		return fm.Title, nil
	}
	return markdown.ExtractTitle(body)
}

// FrontMatterKeys lists the keys accepted in a front matter block.
func FrontMatterKeys() []string {
	return slices.Clone(pipeline.FrontMatterKeys)
}
