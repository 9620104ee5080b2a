package config

import (
	"flag"
	"os"

	"github.com/AaronBlvde/wiki-platform/internal/flagx"
)

func parseFlags(config *Config) {

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)

	identityAddr := fs.String("i", config.IdentityAddr, "identity service base url")
	wikiAddr := fs.String("w", config.WikiAddr, "wiki service base url")

	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-i", "-w"})); err != nil {
		return
	}

	config.IdentityAddr = *identityAddr
	config.WikiAddr = *wikiAddr
}
