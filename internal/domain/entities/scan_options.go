package entities

import "io"

const (
	// DefaultRoot is the directory scanned when no root is given.
	DefaultRoot = "src"

	// DefaultFormat is the report format used when none is given.
	DefaultFormat = "text"
)

// ScanOptions holds runtime options for a single scan.
type ScanOptions struct {
	Root    string
	Format  string // Reporter name (text, json, yaml)
	Verbose bool
	Output  io.Writer // Where the report is written; stdout in the CLI
}

// ScanSummary counts what a scan did. It never affects the exit code.
type ScanSummary struct {
	FilesScanned int
	Findings     int
	ReadErrors   int
}
