package main

import (
	"flag"
	"fmt"

	"github.com/MKhiriev/go-settings-keeper/internal/config"
	"github.com/MKhiriev/go-settings-keeper/internal/export"
	"github.com/MKhiriev/go-settings-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var exportYAML, exportDotenv string
	var showSources bool

	flag.StringVar(&exportYAML, "export-yaml", "", "Dump the resolved config to a YAML file at the given path")
	flag.StringVar(&exportDotenv, "export-dotenv", "", "Dump the resolved config to a dotenv file at the given path")
	flag.BoolVar(&showSources, "sources", false, "Report availability of every configuration source")
	flag.Parse()

	log := logger.NewLogger("settings")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configs")
	}

	// Re-create the logger with the resolved logging settings.
	log = logger.FromSettings("settings", cfg.Logging)

	dump, err := export.Dump(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error dumping configs")
	}
	log.Info().Str("service", cfg.ServiceName).Any("config", dump).Msg("resolved configs")

	if showSources {
		config.LogSources(log, config.Sources())
	}

	if exportYAML != "" {
		if err := export.DumpYAMLFile(exportYAML, cfg); err != nil {
			log.Fatal().Err(err).Msg("error exporting configs to yaml")
		}
		log.Info().Str("path", exportYAML).Msg("configs exported to yaml")
	}

	if exportDotenv != "" {
		if err := export.DumpDotenvFile(exportDotenv, cfg); err != nil {
			log.Fatal().Err(err).Msg("error exporting configs to dotenv")
		}
		log.Info().Str("path", exportDotenv).Msg("configs exported to dotenv")
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
