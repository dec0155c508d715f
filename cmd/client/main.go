package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/client"
	"github.com/MKhiriev/go-user-directory/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-directory-cli", false)

	serverURL := flag.String("s", getenv("USER_DIRECTORY_SERVER_URL", "http://localhost:8080"), "server base URL")
	apiKey := flag.String("k", os.Getenv("USER_DIRECTORY_API_KEY"), "API key sent with every request")
	flag.Parse()

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *serverURL,
		APIKey:  *apiKey,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	command := flag.Arg(0)
	var args []string
	if flag.NArg() > 1 {
		args = flag.Args()[1:]
	}

	if err = app.Run(context.Background(), command, args); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
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
