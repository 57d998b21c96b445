package core

import (
	"os"
	"strconv"
)

// Config holds the process-level configuration
type Config struct {
	// Core settings
	ConfigPath string
	Debug      bool
	Quiet      bool
	JSONOutput bool

	// Command line args
	CLICommand  string
	CLIArgs     []string
	ShowVersion bool
}

// ParseEnv creates a Config from environment variables and command line args
func ParseEnv() Config {
	cfg := Config{
		ConfigPath: os.Getenv("PROGMAN_CONFIG"),
		Debug:      parseBool(os.Getenv("PROGMAN_DEBUG")),
		Quiet:      parseBool(os.Getenv("PROGMAN_QUIET")),
		JSONOutput: parseBool(os.Getenv("PROGMAN_JSON")),
	}

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v":
			cfg.ShowVersion = true
		case "--debug":
			cfg.Debug = true
		case "--quiet", "-q":
			cfg.Quiet = true
		case "--json":
			cfg.JSONOutput = true
		case "--config":
			if i+1 < len(args) {
				i++
				cfg.ConfigPath = args[i]
			}
		case "list", "launch", "path":
			if cfg.CLICommand == "" {
				cfg.CLICommand = args[i]
				cfg.CLIArgs = args[i+1:]
				i = len(args)
			}
		}
	}

	return cfg
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}
