package assets

import (
	"fmt"
	"strings"
)

// MaxAssetNameLength bounds style and template names.
const MaxAssetNameLength = 64

// ValidateAssetName checks that an asset name is a bare file stem.
// Path separators, dots, whitespace and NUL are rejected so a name can never
// change directory or extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxAssetNameLength {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidAssetName, MaxAssetNameLength)
	}
	if strings.ContainsAny(name, "/\\.\x00 \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
