package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/asciiscan/internal/domain/entities"
)

// Rules is the interface for the rules command.
type Rules interface {
	Execute(out io.Writer) error
}

// RulesCommand prints the fixed scan rules.
type RulesCommand struct {
	rules entities.ScanRules
}

// NewRulesCommand creates a new RulesCommand.
func NewRulesCommand(rules entities.ScanRules) *RulesCommand {
	return &RulesCommand{rules: rules}
}

// Execute writes the suffixes, pruned directories, and allow-listed characters to out.
func (it *RulesCommand) Execute(out io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Suffixes: %s\n", strings.Join(it.rules.Suffixes(), " "))
	fmt.Fprintf(&sb, "Pruned directories: %s\n", strings.Join(it.rules.PrunedDirs(), " "))
	sb.WriteString("Allow-listed characters:\n")
	for _, ch := range it.rules.AllowList() {
		fmt.Fprintf(&sb, "  %c (U+%04X)\n", ch, ch)
	}

	if _, err := io.WriteString(out, sb.String()); err != nil {
		return fmt.Errorf("failed to write rules: %w", err)
	}
	return nil
}
