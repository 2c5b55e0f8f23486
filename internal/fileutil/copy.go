package fileutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Static copy remapping.
const (
	StylesheetName   = "style.css"
	StylesheetTarget = "index.css"
	ImagesDir        = "images"
	imageExt         = ".png"
)

// Logf receives one line per copied file.
type Logf func(format string, args ...any)

// CopyStatic replaces dst with a copy of src.
//
// dst is removed, then recreated together with dst/images. Directories are
// replicated. At the root of src, style.css is copied to dst/index.css and
// *.png files to dst/images/ (both case insensitive); every other file keeps
// its relative path. Each copy is reported through logf before it happens.
//
// dst must not be src or lie inside it, and src must not lie inside dst.
func CopyStatic(src, dst string, logf Logf) error {
	if src == "" || dst == "" {
		return ErrEmptyPath
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading static directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceNotDirectory, src)
	}
	if IsWithin(dst, src) || IsWithin(src, dst) {
		return fmt.Errorf("%w: %s and %s", ErrUnsafeDestination, src, dst)
	}

	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("cleaning %s: %w", dst, err)
	}
	if err := os.MkdirAll(filepath.Join(dst, ImagesDir), DefaultDirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			return os.MkdirAll(filepath.Join(dst, rel), DefaultDirPerm)
		}

		target := staticTarget(dst, rel)
		logf("Copying %s to %s", path, target)
		return copyFile(path, target)
	})
}

// staticTarget maps a path relative to the static root to its destination.
func staticTarget(dst, rel string) string {
	if filepath.Dir(rel) != "." {
		return filepath.Join(dst, rel)
	}

	name := strings.ToLower(rel)
	switch {
	case name == StylesheetName:
		return filepath.Join(dst, StylesheetTarget)
	case strings.HasSuffix(name, imageExt):
		return filepath.Join(dst, ImagesDir, rel)
	default:
		return filepath.Join(dst, rel)
	}
}

// copyFile copies src to dst, overwriting dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- walked from the static directory
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), DefaultDirPerm); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePerm) // #nosec G304 -- derived from the output directory
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
