// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/meguri-app/meguri/internal/client"
	"github.com/meguri-app/meguri/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("meguri-client")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := client.NewApp(ctx, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating client app")
		fmt.Fprintf(os.Stderr, "meguri: %v\n", err)
		os.Exit(1)
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client exited with error")
		fmt.Fprintf(os.Stderr, "meguri: %v\n", err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
