//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/asciiscan/internal/domain/entities"
	domainRepos "github.com/rios0rios0/asciiscan/internal/domain/repositories"
	"github.com/rios0rios0/asciiscan/internal/infrastructure/controllers"
	infraRepos "github.com/rios0rios0/asciiscan/internal/infrastructure/repositories"
	"github.com/rios0rios0/asciiscan/test/domain/commanddoubles"
	doubles "github.com/rios0rios0/asciiscan/test/infrastructure/repositorydoubles"
)

func newRegistry(names ...string) *infraRepos.ReporterRegistry {
	registry := infraRepos.NewReporterRegistry()
	for _, name := range names {
		registry.Register(name, func(_ io.Writer) domainRepos.ReportRepository {
			return &doubles.DummyReportRepository{}
		})
	}
	return registry
}

func newCobraCommand(controller *controllers.ScanController, out io.Writer) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "scan"}
	cmd.Flags().BoolP("verbose", "v", false, "")
	controller.AddFlags(cmd)
	cmd.SetOut(out)
	return cmd
}

func TestScanControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should scan src when no root is given", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubScanCommand{}
		controller := controllers.NewScanController(stub, newRegistry("text"))
		var out bytes.Buffer
		cmd := newCobraCommand(controller, &out)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "src", stub.LastOpts.Root)
		assert.Equal(t, "text", stub.LastOpts.Format)
		assert.False(t, stub.LastOpts.Verbose)
		assert.Same(t, &out, stub.LastOpts.Output)
	})

	t.Run("should pass the root argument and flags", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubScanCommand{}
		controller := controllers.NewScanController(stub, newRegistry("text", "json"))
		cmd := newCobraCommand(controller, io.Discard)
		require.NoError(t, cmd.Flags().Set("format", "json"))
		require.NoError(t, cmd.Flags().Set("verbose", "true"))

		// when
		err := controller.Execute(cmd, []string{"web/app"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "web/app", stub.LastOpts.Root)
		assert.Equal(t, "json", stub.LastOpts.Format)
		assert.True(t, stub.LastOpts.Verbose)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		scanErr := errors.New("root path must be a directory")
		stub := &commanddoubles.StubScanCommand{ExecuteErr: scanErr}
		controller := controllers.NewScanController(stub, newRegistry("text"))
		cmd := newCobraCommand(controller, io.Discard)

		// when
		err := controller.Execute(cmd, []string{"missing"})

		// then
		require.ErrorIs(t, err, scanErr)
		assert.Contains(t, err.Error(), "scan failed")
	})
}

func TestScanControllerAddFlags(t *testing.T) {
	t.Parallel()

	// given
	controller := controllers.NewScanController(&commanddoubles.StubScanCommand{}, newRegistry("yaml", "text", "json"))
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "scan"}

	// when
	controller.AddFlags(cmd)

	// then
	flag := cmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "f", flag.Shorthand)
	assert.Equal(t, entities.DefaultFormat, flag.DefValue)
	assert.Contains(t, flag.Usage, "json, text, yaml")
}

func TestScanControllerGetBind(t *testing.T) {
	t.Parallel()

	// given
	controller := controllers.NewScanController(&commanddoubles.StubScanCommand{}, newRegistry())

	// when
	bind := controller.GetBind()

	// then
	assert.Equal(t, "scan [root]", bind.Use)
	assert.NotEmpty(t, bind.Short)
}
