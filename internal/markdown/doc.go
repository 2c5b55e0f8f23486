// Package markdown converts a small Markdown dialect into an htmlnode tree.
//
// Conversion runs in two stages. Block segmentation splits a document on
// blank lines and classifies each block (paragraph, heading, fenced code,
// quote, unordered or ordered list). Inline tokenization then turns the text
// of each block into spans: images, links, **bold**, _italic_ and `code`,
// applied in that order so that delimiters inside URLs are never read as
// styling.
//
// Classification is all-or-nothing: a block where one line breaks the list
// or quote form is a paragraph. Emphasis does not nest, and text is not
// escaped.
package markdown
