package markdown

import (
	"strings"
)

// ExtractTitle returns the content of the first level-1 heading line.
// Lines are scanned top to bottom with leading whitespace ignored.
func ExtractTitle(document string) (string, error) {
	for _, line := range strings.Split(document, "\n") {
		line = strings.TrimLeft(line, " \t")
		m := headingPattern.FindStringSubmatch(line)
		if m == nil || len(m[1]) != 1 {
			continue
		}
		if title := strings.TrimSpace(line[len(m[0]):]); title != "" {
			return title, nil
		}
	}
	return "", ErrNoTitleFound
}
