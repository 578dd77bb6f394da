package main

import (
	"github.com/rios0rios0/asciiscan/internal"
	"github.com/rios0rios0/asciiscan/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() (*internal.AppInternal, *controllers.ScanController) {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal and the controller behind the root command
	var appInternal *internal.AppInternal
	var scanController *controllers.ScanController
	if err := container.Invoke(func(ai *internal.AppInternal, sc *controllers.ScanController) {
		appInternal = ai
		scanController = sc
	}); err != nil {
		panic(err)
	}

	return appInternal, scanController
}
