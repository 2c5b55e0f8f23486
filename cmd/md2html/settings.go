package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for settings resolution.
var (
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrReadTemplate   = errors.New("failed to read template file")
)

// settings is the resolved configuration of one command run.
type settings struct {
	cfg        *config.Config
	configName string // name or path the config was loaded from, if any
	timeout    time.Duration
}

// loadSettings builds the configuration from defaults, the config file,
// then environment variables. Commands apply their flags on top.
func loadSettings(flags commonFlags, env *envConfig) (*settings, error) {
	s := &settings{cfg: config.DefaultConfig(), timeout: env.Timeout}

	name := flags.config
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		cfg, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		s.cfg = cfg
		s.configName = name
	}

	applyEnvConfig(env, s.cfg)
	return s, nil
}

// applyRenderFlags merges rendering flags into the settings. Boolean flags
// only override when given explicitly.
func (s *settings) applyRenderFlags(f renderFlags, changed func(string) bool) error {
	setString(&s.cfg.Site.Template, f.template)
	setString(&s.cfg.Render.Engine, f.engine)
	setString(&s.cfg.Render.Style, f.style)
	setString(&s.cfg.Assets.BasePath, f.assetPath)

	if changed("rewrite-links") {
		s.cfg.Render.RewriteLinks = f.rewriteLinks
	}
	if changed("drafts") {
		s.cfg.Render.Drafts = f.drafts
	}

	if f.timeout != "" {
		d, err := time.ParseDuration(f.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q (use a positive duration like 30s)", ErrInvalidTimeout, f.timeout)
		}
		s.timeout = d
	}
	return nil
}

// converterOptions translates the settings into converter options.
// A missing default template is not an error: the embedded page template
// is used instead and a warning is written to warn.
func (s *settings) converterOptions(warn io.Writer) ([]md2html.Option, string, error) {
	opts := []md2html.Option{
		md2html.WithEngine(s.cfg.Render.Engine),
		md2html.WithMarkdownLinks(s.cfg.Render.RewriteLinks),
	}
	if s.cfg.Assets.BasePath != "" {
		opts = append(opts, md2html.WithAssetPath(s.cfg.Assets.BasePath))
	}
	if s.cfg.Render.Style != "" {
		opts = append(opts, md2html.WithStyle(s.cfg.Render.Style))
	}
	if s.timeout > 0 {
		opts = append(opts, md2html.WithTimeout(s.timeout))
	}

	tmplOpt, label, err := resolveTemplate(s.cfg.Site.Template, warn)
	if err != nil {
		return nil, "", err
	}
	if tmplOpt != nil {
		opts = append(opts, tmplOpt)
	}
	return opts, label, nil
}

// resolveTemplate maps the template setting to an option and a label for
// log lines:
//   - empty: embedded default
//   - existing file: its content
//   - missing default file: embedded default, with a warning
//   - other path-like values: read error
//   - anything else: an asset name
func resolveTemplate(value string, warn io.Writer) (md2html.Option, string, error) {
	if value == "" {
		return nil, "embedded " + md2html.DefaultTemplate + " template", nil
	}

	if fileutil.FileExists(value) {
		content, err := os.ReadFile(value) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
		}
		return md2html.WithTemplate(string(content)), value, nil
	}

	if value == config.DefaultTemplate {
		fmt.Fprintf(warn, "warning: %s not found, using the embedded %s template\n", value, md2html.DefaultTemplate)
		return nil, "embedded " + md2html.DefaultTemplate + " template", nil
	}

	if fileutil.IsFilePath(value) || strings.EqualFold(filepath.Ext(value), ".html") {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrReadTemplate, value, os.ErrNotExist)
	}

	return md2html.WithTemplateName(value), value + " template", nil
}
