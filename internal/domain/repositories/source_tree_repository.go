package repositories

import (
	"github.com/rios0rios0/asciiscan/internal/domain/entities"
)

// SourceFile is an eligible file found during traversal. Its content is only
// read when Content is called.
type SourceFile interface {
	// Path returns the display path: the scan root joined with the relative path.
	Path() string

	// Content reads the whole file.
	Content() ([]byte, error)
}

// SourceTreeRepository abstracts the directory tree being scanned.
type SourceTreeRepository interface {
	// Walk visits every eligible file under root exactly once, in lexical order
	// within each directory, never descending into a pruned directory. An error
	// returned by visit stops the walk and is returned.
	Walk(root string, rules entities.ScanRules, visit func(file SourceFile) error) error
}
