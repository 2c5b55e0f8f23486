// Package assets provides HTML page templates and CSS styles for site generation.
// Assets can be loaded from embedded files or custom filesystem paths.
package assets

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads a page template by name using the default embedded loader.
// Returns ErrTemplateNotFound if the template does not exist.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// AvailableStyles lists the embedded style names, sorted.
func AvailableStyles() []string {
	return defaultLoader.Styles()
}

// AvailableTemplates lists the embedded template names, sorted.
func AvailableTemplates() []string {
	return defaultLoader.Templates()
}
