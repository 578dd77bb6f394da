package reporters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rios0rios0/asciiscan/internal/domain/repositories"
)

// JSONReportRepository writes a single JSON document when flushed.
type JSONReportRepository struct {
	documentCollector
	out io.Writer
}

var _ repositories.ReportRepository = (*JSONReportRepository)(nil)

// NewJSONReportRepository creates a JSONReportRepository writing to out.
func NewJSONReportRepository(out io.Writer) *JSONReportRepository {
	return &JSONReportRepository{
		documentCollector: newDocumentCollector(),
		out:               out,
	}
}

func (it *JSONReportRepository) Flush() error {
	encoder := json.NewEncoder(it.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(it.document); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
