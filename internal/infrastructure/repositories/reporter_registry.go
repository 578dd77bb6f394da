package repositories

import (
	"fmt"
	"io"
	"sort"

	domainRepos "github.com/rios0rios0/asciiscan/internal/domain/repositories"
)

// ReporterFactory creates a ReportRepository writing to out.
type ReporterFactory func(out io.Writer) domainRepos.ReportRepository

// ReporterRegistry manages all registered report formats.
type ReporterRegistry struct {
	reporters map[string]ReporterFactory
}

// NewReporterRegistry creates an empty reporter registry.
func NewReporterRegistry() *ReporterRegistry {
	return &ReporterRegistry{
		reporters: make(map[string]ReporterFactory),
	}
}

// Register adds a reporter factory under the given format name (e.g. "json").
func (r *ReporterRegistry) Register(name string, factory ReporterFactory) {
	r.reporters[name] = factory
}

// Get returns a reporter for the given format writing to out.
func (r *ReporterRegistry) Get(name string, out io.Writer) (domainRepos.ReportRepository, error) {
	factory, ok := r.reporters[name]
	if !ok {
		return nil, fmt.Errorf("unknown report format: %q (available: %v)", name, r.Names())
	}
	return factory(out), nil
}

// Names returns the sorted list of registered format names.
func (r *ReporterRegistry) Names() []string {
	names := make([]string, 0, len(r.reporters))
	for name := range r.reporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
