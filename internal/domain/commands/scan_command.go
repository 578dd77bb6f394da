package commands

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/asciiscan/internal/domain/entities"
	"github.com/rios0rios0/asciiscan/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/asciiscan/internal/infrastructure/repositories"
)

// Scan is the interface for the scan command.
type Scan interface {
	Execute(ctx context.Context, opts entities.ScanOptions) (entities.ScanSummary, error)
}

// ScanCommand walks a source tree and reports every non-ASCII character
// outside the allow-list.
type ScanCommand struct {
	rules            entities.ScanRules
	sourceTree       repositories.SourceTreeRepository
	reporterRegistry *infraRepos.ReporterRegistry
}

// NewScanCommand creates a new ScanCommand.
func NewScanCommand(
	rules entities.ScanRules,
	sourceTree repositories.SourceTreeRepository,
	reporterRegistry *infraRepos.ReporterRegistry,
) *ScanCommand {
	return &ScanCommand{
		rules:            rules,
		sourceTree:       sourceTree,
		reporterRegistry: reporterRegistry,
	}
}

// Execute scans opts.Root. A file that cannot be read is reported and skipped;
// only traversal-level and output failures are returned as errors.
func (it *ScanCommand) Execute(
	ctx context.Context,
	opts entities.ScanOptions,
) (entities.ScanSummary, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	var summary entities.ScanSummary

	root := opts.Root
	if root == "" {
		root = entities.DefaultRoot
	}
	format := opts.Format
	if format == "" {
		format = entities.DefaultFormat
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	reporter, err := it.reporterRegistry.Get(format, out)
	if err != nil {
		return summary, err
	}

	logger.Debugf("Scanning %q (format: %s)", root, format)

	walkErr := it.sourceTree.Walk(root, it.rules, func(file repositories.SourceFile) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		summary.FilesScanned++
		return it.scanFile(file, reporter, &summary)
	})
	if walkErr != nil {
		return summary, fmt.Errorf("failed to scan %q: %w", root, walkErr)
	}

	if flushErr := reporter.Flush(); flushErr != nil {
		return summary, fmt.Errorf("failed to write report: %w", flushErr)
	}

	logger.Infof(
		"Scanned %d files: %d findings, %d unreadable",
		summary.FilesScanned, summary.Findings, summary.ReadErrors,
	)
	return summary, nil
}

func (it *ScanCommand) scanFile(
	file repositories.SourceFile,
	reporter repositories.ReportRepository,
	summary *entities.ScanSummary,
) error {
	logger.Debugf("Reading %s", file.Path())

	content, err := file.Content()
	if err == nil {
		err = validateUTF8(content)
	}
	if err != nil {
		summary.ReadErrors++
		return reporter.ReportReadError(entities.ReadError{Path: file.Path(), Message: err.Error()})
	}

	for _, finding := range findNonASCII(file.Path(), string(content), it.rules) {
		summary.Findings++
		if reportErr := reporter.ReportFinding(finding); reportErr != nil {
			return reportErr
		}
	}
	return nil
}

// findNonASCII returns the reportable characters of text in order. Lines end at
// "\n", "\r\n", or a lone "\r".
func findNonASCII(path, text string, rules entities.ScanRules) []entities.Finding {
	var findings []entities.Finding

	line := 1
	for i, ch := range text {
		switch {
		case ch == '\n':
			if i > 0 && text[i-1] == '\r' {
				continue
			}
			line++
		case ch == '\r':
			line++
		case rules.IsReportable(ch):
			findings = append(findings, entities.Finding{Path: path, Line: line, Char: ch})
		}
	}
	return findings
}

// validateUTF8 rejects content that does not decode as UTF-8. Decoding is
// all-or-nothing: a file with one bad byte yields no findings.
func validateUTF8(content []byte) error {
	if utf8.Valid(content) {
		return nil
	}
	offset := 0
	for offset < len(content) {
		r, size := utf8.DecodeRune(content[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return fmt.Errorf("invalid UTF-8 byte 0x%02x at offset %d", content[offset], offset)
}
