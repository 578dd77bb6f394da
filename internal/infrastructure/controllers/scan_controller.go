package controllers

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/asciiscan/internal/domain/commands"
	"github.com/rios0rios0/asciiscan/internal/domain/entities"
	infraRepos "github.com/rios0rios0/asciiscan/internal/infrastructure/repositories"
)

// ScanController handles the "scan" subcommand and the root command.
type ScanController struct {
	command          commands.Scan
	reporterRegistry *infraRepos.ReporterRegistry
}

// NewScanController creates a new ScanController.
func NewScanController(command commands.Scan, reporterRegistry *infraRepos.ReporterRegistry) *ScanController {
	return &ScanController{command: command, reporterRegistry: reporterRegistry}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan [root]",
		Short: "Report non-ASCII characters in script files",
		Long: `Walk the root directory (default "src") and report every character above
the 7-bit ASCII range found in .ts, .tsx, .js and .jsx files, except the
accented letters of Portuguese orthography.

node_modules, .git and dist directories are skipped at any depth.
Each finding is printed as:

  path:line: Found non-ASCII: char (U+XXXX)

Findings never change the exit status.`,
	}
}

// Execute runs a scan of the root given as the first argument.
func (it *ScanController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	root := entities.DefaultRoot
	if len(args) > 0 {
		root = args[0]
	}

	if _, err := it.command.Execute(ctx, entities.ScanOptions{
		Root:    root,
		Format:  format,
		Verbose: verbose,
		Output:  cmd.OutOrStdout(),
	}); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	return nil
}

// AddFlags adds the scan-specific flags to the given Cobra command.
func (it *ScanController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", entities.DefaultFormat,
		fmt.Sprintf("Report format (%s)", strings.Join(it.reporterRegistry.Names(), ", ")),
	)
}
