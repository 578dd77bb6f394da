//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/asciiscan/internal/domain/commands"
)

// StubRulesCommand is a stub implementation of commands.Rules.
type StubRulesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOut          io.Writer
}

var _ commands.Rules = (*StubRulesCommand)(nil)

func (s *StubRulesCommand) Execute(out io.Writer) error {
	s.ExecuteCallCount++
	s.LastOut = out
	return s.ExecuteErr
}
