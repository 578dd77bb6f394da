//go:build unit

package commands_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/asciiscan/internal/domain/commands"
	"github.com/rios0rios0/asciiscan/internal/domain/entities"
)

func TestRulesCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should print suffixes, pruned directories and every allowed character", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewRulesCommand(entities.NewScanRules())
		var out bytes.Buffer

		// when
		err := cmd.Execute(&out)

		// then
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		assert.Equal(t, "Suffixes: .ts .tsx .js .jsx", lines[0])
		assert.Equal(t, "Pruned directories: node_modules .git dist", lines[1])
		assert.Equal(t, "Allow-listed characters:", lines[2])
		assert.Len(t, lines, 3+42)
		assert.Equal(t, "  á (U+00E1)", lines[3])
		assert.Contains(t, lines, "  Ẽ (U+1EBC)")
	})
}
