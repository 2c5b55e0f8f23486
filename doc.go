// Package md2html converts Markdown documents to HTML pages.
//
// # Quick Start
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(result.HTML), 0644)
//
// The result carries the page title (result.Title), the rendered body
// (result.Content) and the filled page template (result.HTML).
//
// # Conversion Pipeline
//
//  1. Preprocessing (byte order mark, CRLF to LF)
//  2. Front matter split (title, description, draft)
//  3. Markdown to HTML with the native engine or goldmark
//  4. Title extraction: front matter title, else the first "# " heading
//  5. Optional .md to .html link rewriting
//  6. Template filling ({{ Title }} and {{ Content }})
//  7. Stylesheet injection
//
// # Engines
//
// The native engine supports paragraphs, headings, fenced code, quotes,
// ordered and unordered lists, and the inline forms **bold**, _italic_,
// `code`, [links](url) and ![images](url). Text is emitted unescaped and
// nested inline markup is not supported; an unterminated delimiter fails
// with ErrMalformedInlineMarkup.
//
// The goldmark engine adds GitHub Flavored Markdown, footnotes, heading IDs
// and chroma syntax highlighting with CSS classes:
//
//	conv, err := md2html.NewConverter(md2html.WithEngine(md2html.EngineGoldmark))
//
// # Templates and Styles
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithTemplate("<title>{{ Title }}</title>{{ Content }}"),
//	    md2html.WithStyle("minimal"),
//	    md2html.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom.html
//
// # Parallel Processing
//
// For batch conversion, ConverterPool hands one converter to each worker:
//
//	pool, err := md2html.NewConverterPool(md2html.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	defer pool.Release(conv)
package md2html
