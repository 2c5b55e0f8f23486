package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/config"
)

// envPrefix is the prefix for every recognized environment variable.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // MD2HTML_CONFIG: config file name or path
	Timeout    time.Duration // MD2HTML_TIMEOUT: per-page timeout

	ContentDir string // MD2HTML_CONTENT_DIR
	StaticDir  string // MD2HTML_STATIC_DIR
	OutputDir  string // MD2HTML_OUTPUT_DIR
	Template   string // MD2HTML_TEMPLATE

	Engine       string // MD2HTML_ENGINE
	Style        string // MD2HTML_STYLE
	AssetPath    string // MD2HTML_ASSET_PATH
	RewriteLinks *bool  // MD2HTML_REWRITE_LINKS
	Drafts       *bool  // MD2HTML_DRAFTS

	Workers int // MD2HTML_WORKERS
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":        true,
	"MD2HTML_TIMEOUT":       true,
	"MD2HTML_CONTENT_DIR":   true,
	"MD2HTML_STATIC_DIR":    true,
	"MD2HTML_OUTPUT_DIR":    true,
	"MD2HTML_TEMPLATE":      true,
	"MD2HTML_ENGINE":        true,
	"MD2HTML_STYLE":         true,
	"MD2HTML_ASSET_PATH":    true,
	"MD2HTML_REWRITE_LINKS": true,
	"MD2HTML_DRAFTS":        true,
	"MD2HTML_WORKERS":       true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable durations, booleans and integers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
		ContentDir: os.Getenv("MD2HTML_CONTENT_DIR"),
		StaticDir:  os.Getenv("MD2HTML_STATIC_DIR"),
		OutputDir:  os.Getenv("MD2HTML_OUTPUT_DIR"),
		Template:   os.Getenv("MD2HTML_TEMPLATE"),
		Engine:     os.Getenv("MD2HTML_ENGINE"),
		Style:      os.Getenv("MD2HTML_STYLE"),
		AssetPath:  os.Getenv("MD2HTML_ASSET_PATH"),
	}

	if timeout := os.Getenv("MD2HTML_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	cfg.RewriteLinks = envBool("MD2HTML_REWRITE_LINKS")
	cfg.Drafts = envBool("MD2HTML_DRAFTS")

	return cfg
}

// envBool returns nil when name is unset or not a boolean.
func envBool(name string) *bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config values with the environment variables
// that are set. CLI flags are applied afterwards by the commands, giving
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setString(&cfg.Site.ContentDir, env.ContentDir)
	setString(&cfg.Site.StaticDir, env.StaticDir)
	setString(&cfg.Site.OutputDir, env.OutputDir)
	setString(&cfg.Site.Template, env.Template)
	setString(&cfg.Render.Engine, env.Engine)
	setString(&cfg.Render.Style, env.Style)
	setString(&cfg.Assets.BasePath, env.AssetPath)

	if env.RewriteLinks != nil {
		cfg.Render.RewriteLinks = *env.RewriteLinks
	}
	if env.Drafts != nil {
		cfg.Render.Drafts = *env.Drafts
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
