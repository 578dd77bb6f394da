package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/asciiscan/internal/domain/commands"
	"github.com/rios0rios0/asciiscan/internal/domain/entities"
)

// RulesController handles the "rules" subcommand.
type RulesController struct {
	command commands.Rules
}

// NewRulesController creates a new RulesController.
func NewRulesController(command commands.Rules) *RulesController {
	return &RulesController{command: command}
}

// GetBind returns the Cobra command metadata for the rules controller.
func (it *RulesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "rules",
		Short: "Show the scanned suffixes, skipped directories and allowed characters",
	}
}

// Execute prints the rule set.
func (it *RulesController) Execute(cmd *cobra.Command, _ []string) error {
	return it.command.Execute(cmd.OutOrStdout())
}
