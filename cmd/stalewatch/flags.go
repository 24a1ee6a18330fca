package main

import (
	"flag"
)

type AppFlags struct {
	GlobalConfigFile string
	LogLevel         string
	DryRun           bool
}

func ParseFlags() AppFlags {
	globalConfigFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, defaults plus environment variables are used.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config file if set)")

	dryRun := flag.Bool("dry-run", false, "Evaluate and log stale hosts without sending any notifications")

	flag.Parse()

	flags := AppFlags{
		LogLevel: *logLevel,
		DryRun:   *dryRun,
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	return flags
}
