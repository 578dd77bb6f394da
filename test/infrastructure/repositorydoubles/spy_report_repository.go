//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/asciiscan/internal/domain/entities"
	"github.com/rios0rios0/asciiscan/internal/domain/repositories"
)

// SpyReportRepository implements repositories.ReportRepository as a configurable spy.
type SpyReportRepository struct {
	// --- ReportFinding ---
	Findings      []entities.Finding
	ReportFindErr error

	// --- ReportReadError ---
	ReadErrors    []entities.ReadError
	ReportReadErr error

	// --- Flush ---
	FlushCallCount int
	FlushErr       error
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) ReportFinding(finding entities.Finding) error {
	s.Findings = append(s.Findings, finding)
	return s.ReportFindErr
}

func (s *SpyReportRepository) ReportReadError(readErr entities.ReadError) error {
	s.ReadErrors = append(s.ReadErrors, readErr)
	return s.ReportReadErr
}

func (s *SpyReportRepository) Flush() error {
	s.FlushCallCount++
	return s.FlushErr
}

// DummyReportRepository is a no-op implementation of repositories.ReportRepository.
type DummyReportRepository struct{}

var _ repositories.ReportRepository = (*DummyReportRepository)(nil)

func (d *DummyReportRepository) ReportFinding(_ entities.Finding) error     { return nil }
func (d *DummyReportRepository) ReportReadError(_ entities.ReadError) error { return nil }
func (d *DummyReportRepository) Flush() error                               { return nil }
