//go:build unit

package reporters_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/asciiscan/internal/domain/entities"
	"github.com/rios0rios0/asciiscan/internal/infrastructure/repositories/reporters"
)

func TestTextReportRepository(t *testing.T) {
	t.Parallel()

	t.Run("should write each result immediately in report line format", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := reporters.NewTextReportRepository(&out)

		// when
		require.NoError(t, reporter.ReportFinding(entities.Finding{Path: "src/b.js", Line: 1, Char: '日'}))
		written := out.String()
		require.NoError(t, reporter.ReportReadError(entities.ReadError{Path: "src/x.ts", Message: "boom"}))
		require.NoError(t, reporter.Flush())

		// then
		assert.Equal(t, "src/b.js:1: Found non-ASCII: 日 (U+65E5)\n", written)
		assert.Equal(t, "src/b.js:1: Found non-ASCII: 日 (U+65E5)\nError reading src/x.ts: boom\n", out.String())
	})
}

func TestJSONReportRepository(t *testing.T) {
	t.Parallel()

	t.Run("should write nothing until flushed", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := reporters.NewJSONReportRepository(&out)

		// when
		require.NoError(t, reporter.ReportFinding(entities.Finding{Path: "src/b.js", Line: 2, Char: '€'}))

		// then
		assert.Empty(t, out.String())
	})

	t.Run("should encode findings and errors as one document", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := reporters.NewJSONReportRepository(&out)
		require.NoError(t, reporter.ReportFinding(entities.Finding{Path: "src/b.js", Line: 2, Char: '€'}))
		require.NoError(t, reporter.ReportReadError(entities.ReadError{Path: "src/x.ts", Message: "boom"}))

		// when
		err := reporter.Flush()

		// then
		require.NoError(t, err)
		var document map[string][]map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &document))
		assert.Equal(t, []map[string]any{
			{"path": "src/b.js", "line": float64(2), "char": "€", "code_point": "U+20AC"},
		}, document["findings"])
		assert.Equal(t, []map[string]any{
			{"path": "src/x.ts", "message": "boom"},
		}, document["errors"])
	})

	t.Run("should encode empty lists rather than null", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := reporters.NewJSONReportRepository(&out)

		// when
		err := reporter.Flush()

		// then
		require.NoError(t, err)
		assert.JSONEq(t, `{"findings": [], "errors": []}`, out.String())
	})
}

func TestYAMLReportRepository(t *testing.T) {
	t.Parallel()

	t.Run("should encode findings and errors as one document", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := reporters.NewYAMLReportRepository(&out)
		require.NoError(t, reporter.ReportFinding(entities.Finding{Path: "src/b.js", Line: 1, Char: '本'}))
		require.NoError(t, reporter.ReportReadError(entities.ReadError{Path: "src/x.ts", Message: "boom"}))

		// when
		err := reporter.Flush()

		// then
		require.NoError(t, err)
		var document struct {
			Findings []struct {
				Path      string `yaml:"path"`
				Line      int    `yaml:"line"`
				Char      string `yaml:"char"`
				CodePoint string `yaml:"code_point"`
			} `yaml:"findings"`
			Errors []struct {
				Path    string `yaml:"path"`
				Message string `yaml:"message"`
			} `yaml:"errors"`
		}
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &document))
		require.Len(t, document.Findings, 1)
		assert.Equal(t, "src/b.js", document.Findings[0].Path)
		assert.Equal(t, 1, document.Findings[0].Line)
		assert.Equal(t, "本", document.Findings[0].Char)
		assert.Equal(t, "U+672C", document.Findings[0].CodePoint)
		require.Len(t, document.Errors, 1)
		assert.Equal(t, "boom", document.Errors[0].Message)
	})
}
