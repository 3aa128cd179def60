// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FileStatus indicates what happened to a target file during a run.
type FileStatus string

const (
	FileProcessed FileStatus = "processed"
	FileNotFound  FileStatus = "not_found"
)

// FileReport holds the line counts for one target file.
// For a not_found file all counts are zero.
type FileReport struct {
	// Path is the full path that was resolved for the target.
	Path string `json:"path" yaml:"path"`

	Status FileStatus `json:"status" yaml:"status"`

	// OriginalLines is the line count before filtering.
	OriginalLines int `json:"original_lines" yaml:"original_lines"`

	// FinalLines is the line count written back.
	FinalLines int `json:"final_lines" yaml:"final_lines"`

	// Removed is OriginalLines minus FinalLines.
	Removed int `json:"removed" yaml:"removed"`
}
