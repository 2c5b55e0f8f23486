// Package pipeline implements the stages that turn one Markdown page into
// one HTML page:
//   - preprocessing (byte order mark, line endings)
//   - front matter split (title, description, draft)
//   - Markdown to HTML conversion, native or goldmark
//   - relative .md link rewriting
//   - template filling ({{ Title }}, {{ Content }})
//   - stylesheet injection
//
// Each stage is a small interface with one implementation so the root
// converter can be tested with fakes. File layout, discovery and static
// assets live outside this package.
package pipeline
