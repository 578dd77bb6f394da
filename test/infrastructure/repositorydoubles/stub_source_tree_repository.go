//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/asciiscan/internal/domain/entities"
	"github.com/rios0rios0/asciiscan/internal/domain/repositories"
)

// StubSourceFile is a SourceFile with fixed content or a fixed read error.
type StubSourceFile struct {
	FilePath  string
	Data      []byte
	ReadErr   error
	ReadCalls int
}

var _ repositories.SourceFile = (*StubSourceFile)(nil)

func (f *StubSourceFile) Path() string { return f.FilePath }

func (f *StubSourceFile) Content() ([]byte, error) {
	f.ReadCalls++
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	return f.Data, nil
}

// StubSourceTreeRepository hands Files to the visitor in order, ignoring the rules.
type StubSourceTreeRepository struct {
	Files   []*StubSourceFile
	WalkErr error

	// spy: roots that were walked
	WalkedRoots []string
}

var _ repositories.SourceTreeRepository = (*StubSourceTreeRepository)(nil)

func (s *StubSourceTreeRepository) Walk(
	root string,
	_ entities.ScanRules,
	visit func(file repositories.SourceFile) error,
) error {
	s.WalkedRoots = append(s.WalkedRoots, root)
	if s.WalkErr != nil {
		return s.WalkErr
	}
	for _, file := range s.Files {
		if err := visit(file); err != nil {
			return err
		}
	}
	return nil
}
