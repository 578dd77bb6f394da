package repositories

import (
	"io"

	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/asciiscan/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/asciiscan/internal/infrastructure/repositories/filesystem"
	reportRepo "github.com/rios0rios0/asciiscan/internal/infrastructure/repositories/reporters"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register reporter registry with all report formats
	if err := container.Provide(func() *ReporterRegistry {
		reg := NewReporterRegistry()
		reg.Register("text", func(out io.Writer) domainRepos.ReportRepository {
			return reportRepo.NewTextReportRepository(out)
		})
		reg.Register("json", func(out io.Writer) domainRepos.ReportRepository {
			return reportRepo.NewJSONReportRepository(out)
		})
		reg.Register("yaml", func(out io.Writer) domainRepos.ReportRepository {
			return reportRepo.NewYAMLReportRepository(out)
		})
		return reg
	}); err != nil {
		return err
	}

	// Register the source tree backed by the OS filesystem
	if err := container.Provide(func() domainRepos.SourceTreeRepository {
		return fsRepo.NewSourceTreeRepository()
	}); err != nil {
		return err
	}

	return nil
}
