// Package document splices generated content into a heading-delimited
// section of a Markdown document, leaving the rest of the document
// untouched.
package document

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultHeading is the section heading replaced when none is configured.
const DefaultHeading = "## Preview"

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// Splice returns doc with the section under heading replaced by content.
// The section runs from just after the heading line to the next heading
// of the same level (or end of document). When the heading is missing,
// a new section is appended after trimming the document's trailing
// whitespace. The result always has runs of blank lines collapsed so at
// most one blank line appears in a row.
//
// Splice never creates the document; callers decide what to do when the
// target file does not exist.
func Splice(doc, heading, content string) (string, error) {
	if heading == "" {
		heading = DefaultHeading
	}
	if strings.ContainsAny(heading, "\n\r") {
		return "", fmt.Errorf("heading must be a single line")
	}

	// Match from the heading line up to (not including) the next heading
	// of the same kind, or end of document.
	level := headingLevel(heading)
	primary := regexp.MustCompile(`(?s)(` + regexp.QuoteMeta(heading) + `\s*\n)(.*?)(\n` + strings.Repeat("#", level) + ` |\z)`)
	replacement := "${1}\n" + escapeExpansion(content) + "\n${3}"

	updated := primary.ReplaceAllString(doc, replacement)
	if updated == doc {
		if !strings.Contains(doc, heading) {
			updated = strings.TrimRight(doc, " \t\n\r") + "\n\n" + heading + "\n\n" + content + "\n"
		} else {
			// Heading exists but the primary pattern missed, e.g. the
			// heading is the very last line. Replace through to EOF.
			lenient := regexp.MustCompile(`(?s)(` + regexp.QuoteMeta(heading) + `\s*\n?)(.*)`)
			updated = lenient.ReplaceAllString(doc, "${1}\n\n"+escapeExpansion(content)+"\n")
		}
	}

	return excessBlankLines.ReplaceAllString(updated, "\n\n"), nil
}

// headingLevel counts leading # characters, defaulting to 2 for
// headings that don't use ATX syntax.
func headingLevel(heading string) int {
	n := 0
	for n < len(heading) && heading[n] == '#' {
		n++
	}
	if n == 0 {
		return 2
	}
	return n
}

// escapeExpansion protects $ in user content from being interpreted as
// a capture-group reference by ReplaceAllString.
func escapeExpansion(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
