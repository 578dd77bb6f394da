package reporters

import (
	"fmt"
	"io"

	"github.com/rios0rios0/asciiscan/internal/domain/entities"
	"github.com/rios0rios0/asciiscan/internal/domain/repositories"
)

// TextReportRepository writes one line per finding or read error as soon as it is reported.
type TextReportRepository struct {
	out io.Writer
}

var _ repositories.ReportRepository = (*TextReportRepository)(nil)

// NewTextReportRepository creates a TextReportRepository writing to out.
func NewTextReportRepository(out io.Writer) *TextReportRepository {
	return &TextReportRepository{out: out}
}

func (it *TextReportRepository) ReportFinding(finding entities.Finding) error {
	_, err := fmt.Fprintln(it.out, finding.String())
	return err
}

func (it *TextReportRepository) ReportReadError(readErr entities.ReadError) error {
	_, err := fmt.Fprintln(it.out, readErr.String())
	return err
}

func (it *TextReportRepository) Flush() error { return nil }
