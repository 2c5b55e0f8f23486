package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory under the user config dir searched by name.
const AppDirName = "go-md2html"

// Field length limits.
const (
	MaxPathLength  = 4096
	MaxStyleLength = 4096 // name, path or URL
	MaxEngineLen   = 20
	MaxWorkers     = 32
)

// Engine names accepted by render.engine.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Site defaults.
const (
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultOutputDir  = "public"
	DefaultTemplate   = "template.html"
)

// Config holds all configuration for site generation.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Render RenderConfig `yaml:"render"`
	Assets AssetsConfig `yaml:"assets"`
	Build  BuildConfig  `yaml:"build"`
}

// SiteConfig locates the site's inputs and output.
type SiteConfig struct {
	ContentDir string `yaml:"contentDir"` // Markdown sources, walked recursively
	StaticDir  string `yaml:"staticDir"`  // Copied verbatim (with style.css and png remapping)
	OutputDir  string `yaml:"outputDir"`  // Removed and recreated on each build
	Template   string `yaml:"template"`   // Template file path or embedded template name
}

// RenderConfig controls page conversion.
type RenderConfig struct {
	Engine       string `yaml:"engine"`       // "native" (default) or "goldmark"
	Style        string `yaml:"style"`        // Style name, file path or URL (empty = none)
	RewriteLinks bool   `yaml:"rewriteLinks"` // Rewrite relative .md links to .html
	Drafts       bool   `yaml:"drafts"`       // Render pages with draft: true
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// BuildConfig tunes page generation.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = auto
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	paths := []struct {
		name  string
		value string
	}{
		{"site.contentDir", c.Site.ContentDir},
		{"site.staticDir", c.Site.StaticDir},
		{"site.outputDir", c.Site.OutputDir},
		{"site.template", c.Site.Template},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("render.style", c.Render.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.engine", c.Render.Engine, MaxEngineLen); err != nil {
		return err
	}
	if c.Render.Engine != "" {
		switch strings.ToLower(c.Render.Engine) {
		case EngineNative, EngineGoldmark:
		default:
			return fmt.Errorf("%w: render.engine %q (must be %s or %s)",
				ErrInvalidValue, c.Render.Engine, EngineNative, EngineGoldmark)
		}
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d",
			ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the conventional site layout rendered with the
// native engine and no stylesheet.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			ContentDir: DefaultContentDir,
			StaticDir:  DefaultStaticDir,
			OutputDir:  DefaultOutputDir,
			Template:   DefaultTemplate,
		},
		Render: RenderConfig{Engine: EngineNative},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in the current directory, then in the user
// config directory. Fields absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// ./name.yaml, ./name.yml, then the same two under the user config dir.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
