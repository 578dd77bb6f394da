package reporters

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/asciiscan/internal/domain/repositories"
)

// yamlIndent matches the two-space indentation of the JSON report.
const yamlIndent = 2

// YAMLReportRepository writes a single YAML document when flushed.
type YAMLReportRepository struct {
	documentCollector
	out io.Writer
}

var _ repositories.ReportRepository = (*YAMLReportRepository)(nil)

// NewYAMLReportRepository creates a YAMLReportRepository writing to out.
func NewYAMLReportRepository(out io.Writer) *YAMLReportRepository {
	return &YAMLReportRepository{
		documentCollector: newDocumentCollector(),
		out:               out,
	}
}

func (it *YAMLReportRepository) Flush() error {
	encoder := yaml.NewEncoder(it.out)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(it.document); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	return nil
}
