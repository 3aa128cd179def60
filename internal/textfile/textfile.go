// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textfile reads and writes UTF-8 text files as ordered lines.
// Line endings are normalized on read: "\r\n" and a lone '\r' both become
// '\n' before splitting, so a trailing newline yields a final empty line.
// WriteLines joins with '\n', which rewrites CRLF and CR files to LF.
package textfile

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const lineSep = "\n"

// newlines maps CRLF and CR line endings to LF. CRLF is listed first so it
// is matched as a single break.
var newlines = strings.NewReplacer("\r\n", lineSep, "\r", lineSep)

// ReadLines reads the file at path, normalizes line endings to '\n' and
// splits it into lines. Content that is not valid UTF-8 is rejected with an
// error wrapping encoding.ErrInvalidUTF8.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text, _, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return strings.Split(newlines.Replace(string(text)), lineSep), nil
}

// WriteLines joins lines with '\n' and overwrites the file at path. No
// trailing newline is added beyond what the join produces. An existing
// file keeps its permission bits.
func WriteLines(path string, lines []string) error {
	data := strings.Join(lines, lineSep)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
