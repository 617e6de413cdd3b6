package config

import (
	"flag"
	"os"

	"github.com/michaelwitz/smart-fit/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the Smart Fit API (default from Config)
//	-d string   path to the local credential database (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the Smart Fit API")
	fs.StringVar(&cfg.CredentialDBPath, "d", cfg.CredentialDBPath, "path to the local credential database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
