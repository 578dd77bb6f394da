package repositories

import (
	"github.com/rios0rios0/asciiscan/internal/domain/entities"
)

// ReportRepository receives scan results. Streaming implementations write on
// every call; document implementations buffer until Flush.
type ReportRepository interface {
	ReportFinding(finding entities.Finding) error
	ReportReadError(readErr entities.ReadError) error
	Flush() error
}
