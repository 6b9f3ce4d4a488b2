// Copyright Carter Zenke, 2026. All rights reserved.

// Package format builds the text blocks written into answer files: a
// dash-padded header per question, the answer, and a separator line.
package format

import "strings"

// headerPadding is added to the longest column name to fix the line width
// used for every header and separator in a run.
const headerPadding = 20

// Width returns the uniform header width for a set of columns: the
// length of the longest column name plus the fixed padding.
func Width(columns []string) int {
	longest := 0
	for _, name := range columns {
		if len(name) > longest {
			longest = len(name)
		}
	}
	return longest + headerPadding
}

// Header centers name in a line of dashes exactly width characters long.
// When the dash count is odd the extra dash goes on the right. A width
// smaller than the name yields the bare name rather than an error.
func Header(name string, width int) string {
	dashes := width - len(name)
	left := dashes / 2
	right := dashes - left
	return strings.Repeat("-", max(left, 0)) + name + strings.Repeat("-", max(right, 0))
}

// Block renders one question-and-answer section: header line, the answer
// value, a full-width separator, and a blank line.
func Block(name, value string, width int) string {
	var b strings.Builder
	b.WriteString(Header(name, width))
	b.WriteByte('\n')
	b.WriteString(value)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", max(width, 0)))
	b.WriteString("\n\n")
	return b.String()
}
