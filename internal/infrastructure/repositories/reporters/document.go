package reporters

import (
	"github.com/rios0rios0/asciiscan/internal/domain/entities"
)

// reportDocument is the structured form shared by the JSON and YAML reporters.
type reportDocument struct {
	Findings []findingRecord   `json:"findings" yaml:"findings"`
	Errors   []readErrorRecord `json:"errors"   yaml:"errors"`
}

type findingRecord struct {
	Path      string `json:"path"       yaml:"path"`
	Line      int    `json:"line"       yaml:"line"`
	Char      string `json:"char"       yaml:"char"`
	CodePoint string `json:"code_point" yaml:"code_point"`
}

type readErrorRecord struct {
	Path    string `json:"path"    yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

// documentCollector buffers results until the document is encoded.
type documentCollector struct {
	document reportDocument
}

func newDocumentCollector() documentCollector {
	return documentCollector{
		document: reportDocument{
			Findings: []findingRecord{},
			Errors:   []readErrorRecord{},
		},
	}
}

func (it *documentCollector) ReportFinding(finding entities.Finding) error {
	it.document.Findings = append(it.document.Findings, findingRecord{
		Path:      finding.Path,
		Line:      finding.Line,
		Char:      string(finding.Char),
		CodePoint: finding.CodePoint(),
	})
	return nil
}

func (it *documentCollector) ReportReadError(readErr entities.ReadError) error {
	it.document.Errors = append(it.document.Errors, readErrorRecord{
		Path:    readErr.Path,
		Message: readErr.Message,
	})
	return nil
}
