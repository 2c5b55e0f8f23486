package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_Fallback(t *testing.T) {
	t.Parallel()

	base := assetDir(t, map[string]string{
		"styles/site.css":        "/* site */",
		"styles/minimal.css":     "/* override of minimal */",
		"templates/default.html": "<main>{{ Content }}</main>",
	})
	resolver, err := NewAssetResolver(base)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("custom style", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("site")
		if err != nil || got != "/* site */" {
			t.Errorf("LoadStyle(site) = %q, %v", got, err)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("minimal")
		if err != nil || got != "/* override of minimal */" {
			t.Errorf("LoadStyle(minimal) = %q, %v", got, err)
		}
	})

	t.Run("falls back to embedded style", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadStyle("default")
		if err != nil {
			t.Fatalf("LoadStyle(default) error = %v", err)
		}
		if !strings.Contains(got, "blockquote") {
			t.Error("expected embedded default style content")
		}
	})

	t.Run("custom template overrides embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadTemplate("default")
		if err != nil || got != "<main>{{ Content }}</main>" {
			t.Errorf("LoadTemplate(default) = %q, %v", got, err)
		}
	})

	t.Run("neither has the asset", func(t *testing.T) {
		t.Parallel()

		if _, err := resolver.LoadStyle("nonexistent-xyz"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
		if _, err := resolver.LoadTemplate("nonexistent-xyz"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("validation errors are not masked", func(t *testing.T) {
		t.Parallel()

		if _, err := resolver.LoadStyle("../default"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestAssetResolver_ReadErrorNotMasked(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	base := assetDir(t, map[string]string{"styles/default.css": "/* locked */"})
	locked := filepath.Join(base, "styles", "default.css")
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatalf("setup chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0644) })

	resolver, err := NewAssetResolver(base)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	_, err = resolver.LoadStyle("default")
	if !errors.Is(err, ErrAssetRead) {
		t.Errorf("LoadStyle() error = %v, want ErrAssetRead rather than embedded fallback", err)
	}
}
