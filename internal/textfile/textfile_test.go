// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "trailing newline yields empty last line", content: "a\nb\n", want: []string{"a", "b", ""}},
		{name: "no trailing newline", content: "a\nb", want: []string{"a", "b"}},
		{name: "empty file", content: "", want: []string{""}},
		{name: "crlf normalized", content: "a\r\nb\r\n", want: []string{"a", "b", ""}},
		{name: "lone cr is a line break", content: "a\rb\rc", want: []string{"a", "b", "c"}},
		{name: "mixed endings", content: "a\r\n\r\rb\n", want: []string{"a", "", "", "b", ""}},
		{name: "multibyte text", content: "// 콘솔\nx", want: []string{"// 콘솔", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.js")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := ReadLines(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLines_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.js")
	require.NoError(t, os.WriteFile(path, []byte{'a', '\n', 0xff, 0xfe, '\n'}, 0o644))

	_, err := ReadLines(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, encoding.ErrInvalidUTF8)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.js"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteLines_CRLFBecomesLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.js")
	require.NoError(t, os.WriteFile(path, []byte("a\r\nb\rc"), 0o644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.NoError(t, WriteLines(path, lines))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc", string(data))
}

func TestWriteLines_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.js")
	content := "line one\n\nline three\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.NoError(t, WriteLines(path, lines))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
