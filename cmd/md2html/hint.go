package main

import (
	"context"
	"errors"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// hintFor returns an actionable hint for err, or "" when none applies.
// configName is the config name given by the user, used to list the
// searched locations.
func hintFor(err error, configName string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, md2html.ErrMalformedInlineMarkup):
		return hints.ForMalformedMarkup()
	case errors.Is(err, md2html.ErrNoTitleFound):
		return hints.ForMissingTitle()
	case errors.Is(err, md2html.ErrTemplateMissingContent):
		return hints.ForMissingContentPlaceholder()
	case errors.Is(err, md2html.ErrFrontMatter):
		return hints.ForFrontMatter(md2html.FrontMatterKeys())
	case errors.Is(err, md2html.ErrStyleNotFound):
		return hints.ForStyleNotFound(md2html.AvailableStyles())
	case errors.Is(err, md2html.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(md2html.AvailableTemplates())
	case errors.Is(err, fileutil.ErrUnsafeDestination):
		return hints.ForUnsafeOutput()
	case errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	case errors.Is(err, config.ErrConfigNotFound):
		if configName == "" || fileutil.IsFilePath(configName) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	}
	return ""
}
