package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Bluelink gateway

Usage:
  gateway [flags]

Flags:
  -config-path string   Path to the config yaml file (default "config.yaml")
  -help                 Show this message

Environment:
  PORT                  HTTP listen port (default 8080)
  BLUELINK_REGION       Vendor region: US, CA or EU (default US)
  BLUELINK_BASE_URL     Override the vendor endpoint (testing)
  LOG_LEVEL             DEBUG, INFO, WARN or ERROR (default DEBUG)
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig prints the effective configuration on startup.
func PrintConfig(cfg *Config) {
	fmt.Printf("listen addr:   %s\n", cfg.Server.Addr())
	fmt.Printf("vendor region: %s\n", cfg.Bluelink.Region)
	if cfg.Bluelink.BaseURL != "" {
		fmt.Printf("vendor url:    %s\n", cfg.Bluelink.BaseURL)
	}
	fmt.Printf("log level:     %s\n", cfg.Log.Level)
}
