package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for page discovery.
var (
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrNoPages          = errors.New("no markdown files found")
)

// Page is one markdown source and the HTML file generated from it.
type Page struct {
	InputPath  string
	OutputPath string
}

// discoverPages finds the markdown files under inputPath, or inputPath
// itself when it is a file. Output paths mirror the input tree under
// outputDir; an empty outputDir writes pages next to their sources.
func discoverPages(inputPath, outputDir string) ([]Page, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []Page{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var pages []Page
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isMarkdownFile(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		pages = append(pages, Page{InputPath: path, OutputPath: outPath})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPages, inputPath)
	}
	return pages, nil
}

// resolveOutputPath determines the HTML output path for a markdown file.
// index.md becomes index.html in the mirrored directory.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext) + ".html"

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if baseInputDir == "" && strings.EqualFold(filepath.Ext(outputDir), ".html") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

func isMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
