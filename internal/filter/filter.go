// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter removes console.log call lines from a document and
// collapses runs of blank lines.
//
// Matching is textual, line by line. The token is also matched inside string
// literals, and only the first line of a call that spans several lines is
// removed. Only lines starting with // count as comments.
package filter

import (
	"regexp"
	"strings"
)

// callToken is the call-opening text that marks a line for removal.
const callToken = "console.log("

// commentMarker exempts a line from the embedded-call rule.
const commentMarker = "//"

// leadingCall matches a line whose first non-whitespace text is the call token.
var leadingCall = regexp.MustCompile(`^\s*console\.log\(`)

// ShouldRemove reports whether line is dropped by the removal pass: either
// it starts with console.log( after indentation, or it contains the token
// anywhere and is not a // comment.
func ShouldRemove(line string) bool {
	if leadingCall.MatchString(line) {
		return true
	}
	return strings.Contains(line, callToken) &&
		!strings.HasPrefix(strings.TrimSpace(line), commentMarker)
}

// IsBlank reports whether line is empty after trimming whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// RemoveCalls returns the lines that ShouldRemove keeps, in order.
func RemoveCalls(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if ShouldRemove(line) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// CollapseBlankRuns keeps the first blank line of every run of blank lines
// and drops the rest. A single leading or trailing blank line is kept.
func CollapseBlankRuns(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		if IsBlank(line) {
			if !prevBlank {
				out = append(out, line)
			}
			prevBlank = true
			continue
		}
		out = append(out, line)
		prevBlank = false
	}
	return out
}

// FilterLines runs RemoveCalls then CollapseBlankRuns. The result never has
// more lines than the input and never has two blank lines in a row.
func FilterLines(lines []string) []string {
	return CollapseBlankRuns(RemoveCalls(lines))
}
