//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/asciiscan/internal/domain/commands"
	"github.com/rios0rios0/asciiscan/internal/domain/entities"
)

// StubScanCommand is a stub implementation of commands.Scan.
type StubScanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Summary          entities.ScanSummary
	LastOpts         entities.ScanOptions
}

var _ commands.Scan = (*StubScanCommand)(nil)

func (s *StubScanCommand) Execute(
	_ context.Context,
	opts entities.ScanOptions,
) (entities.ScanSummary, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Summary, s.ExecuteErr
}
