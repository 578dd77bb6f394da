package main

import (
	"context"
	"os"
	"os/signal"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/asciiscan/internal"
	"github.com/rios0rios0/asciiscan/internal/infrastructure/controllers"
)

func buildRootCommand(scanController *controllers.ScanController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "asciiscan [root]",
		Short: "Find non-ASCII characters in JavaScript and TypeScript sources",
		Long: `Scan a source tree for characters outside the 7-bit ASCII range in
.ts, .tsx, .js and .jsx files. Accented letters of Portuguese orthography
are allowed; everything else (emoji, symbols, other scripts) is reported.

Usage modes:
  asciiscan                 Scan ./src
  asciiscan web/src         Scan a specific directory
  asciiscan rules           Show what is scanned, skipped and allowed`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          scanController.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	scanController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE:  controller.Execute,
		}

		// Add controller-specific flags
		if sc, ok := controller.(*controllers.ScanController); ok {
			subCmd.Args = cobra.MaximumNArgs(1)
			sc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext, scanController := injectAppContext()
	cobraRoot := buildRootCommand(scanController)

	// Add all subcommands
	addSubcommands(cobraRoot, appContext)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cobraRoot.ExecuteContext(ctx); err != nil {
		stop()
		logger.Fatalf("Error executing 'asciiscan': %s", err)
	}
}
